package repository

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pageza/recipe-share/backend/internal/models"
)

// AllCategories is the category sentinel that disables category filtering
const AllCategories = "All"

// SortKey selects the ordering applied by Sort
type SortKey string

const (
	SortRecent       SortKey = "recent"
	SortPopular      SortKey = "popular"
	SortQuickest     SortKey = "quickest"
	SortAlphabetical SortKey = "alphabetical"
)

// ParseSortKey maps a request value to a SortKey. The empty string is valid
// and means stored order.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(s); k {
	case "", SortRecent, SortPopular, SortQuickest, SortAlphabetical:
		return k, true
	}
	return "", false
}

// Query combines a text search, a category filter and a sort key
type Query struct {
	Search   string
	Category string
	Sort     SortKey
}

// Apply filters recipes by search and category and then sorts the result.
// The input slice is never reordered.
func (q Query) Apply(recipes []models.Recipe) []models.Recipe {
	return Sort(FilterByCategory(Search(recipes, q.Search), q.Category), q.Sort)
}

// Search keeps recipes whose title, description or any tag contains query,
// ignoring case. An empty query keeps everything.
func Search(recipes []models.Recipe, query string) []models.Recipe {
	needle := strings.ToLower(query)
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r models.Recipe, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// FilterByCategory keeps recipes whose category equals category exactly.
// "" and AllCategories keep everything.
func FilterByCategory(recipes []models.Recipe, category string) []models.Recipe {
	out := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if category == "" || category == AllCategories || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Unknown keys keep the input order.
func Sort(recipes []models.Recipe, key SortKey) []models.Recipe {
	out := slices.Clone(recipes)
	switch key {
	case SortRecent:
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortPopular:
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return cmp.Compare(b.Likes, a.Likes)
		})
	case SortQuickest:
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return cmp.Compare(a.CookTime, b.CookTime)
		})
	case SortAlphabetical:
		// collators keep internal buffers, one per call
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b models.Recipe) int {
			return c.CompareString(a.Title, b.Title)
		})
	}
	return out
}

// Categories returns AllCategories followed by each distinct category in
// first-seen order.
func Categories(recipes []models.Recipe) []string {
	seen := make(map[string]struct{}, len(recipes))
	out := []string{AllCategories}
	for _, r := range recipes {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out
}
