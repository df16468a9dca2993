package models

import (
	"strings"
	"time"
)

// Difficulty is the closed set of preparation difficulty levels
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty levels
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Author is a snapshot of the publishing user taken when the recipe was created.
// It is never updated afterwards.
type Author struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Recipe is a published recipe as stored in the snapshot and returned by the API
type Recipe struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Description  string     `json:"description" yaml:"description"`
	Image        string     `json:"image" yaml:"image"`
	CookTime     int        `json:"cookTime" yaml:"cookTime"`
	Servings     int        `json:"servings" yaml:"servings"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	Ingredients  []string   `json:"ingredients" yaml:"ingredients"`
	Instructions []string   `json:"instructions" yaml:"instructions"`
	Author       Author     `json:"author" yaml:"author"`
	CreatedAt    time.Time  `json:"createdAt" yaml:"createdAt"`
	Likes        int        `json:"likes" yaml:"likes"`
	Category     string     `json:"category" yaml:"category"`
	Tags         []string   `json:"tags" yaml:"tags"`
}

// Clone returns a deep copy so callers can't alias the repository's slices
func (r Recipe) Clone() Recipe {
	r.Ingredients = cloneStrings(r.Ingredients)
	r.Instructions = cloneStrings(r.Instructions)
	r.Tags = cloneStrings(r.Tags)
	return r
}

// RecipeDraft is the caller-supplied part of a recipe: everything except
// id, createdAt and likes.
type RecipeDraft struct {
	Title        string     `json:"title" validate:"required"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	CookTime     int        `json:"cookTime" validate:"gte=1"`
	Servings     int        `json:"servings" validate:"gte=1"`
	Difficulty   Difficulty `json:"difficulty" validate:"oneof=Easy Medium Hard"`
	Ingredients  []string   `json:"ingredients" validate:"min=1"`
	Instructions []string   `json:"instructions" validate:"min=1"`
	Author       Author     `json:"author"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
}

// Normalize drops blank ingredient, instruction and tag entries.
// Entries that are kept are stored as given.
func (d RecipeDraft) Normalize() RecipeDraft {
	d.Ingredients = StripBlank(d.Ingredients)
	d.Instructions = StripBlank(d.Instructions)
	d.Tags = StripBlank(d.Tags)
	return d
}

// StripBlank returns a new slice without the entries that are empty after trimming whitespace
func StripBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
