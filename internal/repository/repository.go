// Package repository holds the in-memory recipe collection and mirrors it to
// a storage.Store on every mutation.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/metrics"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/storage"
)

var (
	// ErrInvalidDraft wraps validation failures from Add
	ErrInvalidDraft = errors.New("invalid recipe draft")
	// ErrInvalidCollection is returned when a collection breaks the id or likes invariants
	ErrInvalidCollection = errors.New("invalid recipe collection")
)

// maxIDAttempts bounds id regeneration on collision
const maxIDAttempts = 5

// RecipeRepository is the ordered recipe collection. Newest recipes come first.
// Mutations are persisted before they become visible; a failed write leaves
// the collection unchanged.
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes []models.Recipe

	store    storage.Store
	log      logger.Logger
	metrics  *metrics.Metrics
	validate *validator.Validate
	seed     []models.Recipe
	now      func() time.Time
	newID    func() (string, error)
}

// Option configures a RecipeRepository
type Option func(*RecipeRepository)

// WithLogger sets the logger
func WithLogger(l logger.Logger) Option {
	return func(r *RecipeRepository) { r.log = l }
}

// WithMetrics sets the metrics collectors
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *RecipeRepository) { r.metrics = m }
}

// WithSeed replaces the built-in example recipes used when no snapshot exists
func WithSeed(recipes []models.Recipe) Option {
	return func(r *RecipeRepository) { r.seed = recipes }
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(r *RecipeRepository) { r.now = now }
}

// WithIDGenerator overrides the UUIDv7 id generator
func WithIDGenerator(gen func() (string, error)) Option {
	return func(r *RecipeRepository) { r.newID = gen }
}

// New creates the repository and initializes it from the store. A missing
// or unreadable snapshot falls back to the seed collection.
func New(ctx context.Context, store storage.Store, opts ...Option) *RecipeRepository {
	r := &RecipeRepository{
		store:    store,
		log:      logger.NewNop(),
		validate: validator.New(),
		now:      time.Now,
		newID:    newUUIDv7,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.seed == nil {
		r.seed = DefaultRecipes()
	}

	r.recipes = r.load(ctx)
	r.metrics.SetTotal(len(r.recipes))
	return r
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *RecipeRepository) load(ctx context.Context) []models.Recipe {
	data, err := r.store.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		r.log.Info("no recipe snapshot found, using seed collection", logger.Int("count", len(r.seed)))
		return cloneAll(r.seed)
	}
	if err != nil {
		r.metrics.StoreError("load")
		r.log.Warn("failed to read recipe snapshot, using seed collection", logger.Error(err))
		return cloneAll(r.seed)
	}

	recipes, err := decodeSnapshot(data)
	if err != nil {
		r.log.Warn("malformed recipe snapshot, using seed collection", logger.Error(err))
		return cloneAll(r.seed)
	}
	r.log.Info("loaded recipe snapshot", logger.Int("count", len(recipes)))
	return recipes
}

func decodeSnapshot(data []byte) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if recipes == nil {
		return nil, fmt.Errorf("decode snapshot: %w: null collection", ErrInvalidCollection)
	}
	if err := checkCollection(recipes); err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i] = withEmptySlices(recipes[i])
	}
	return recipes, nil
}

// checkCollection enforces unique, non-empty ids, non-negative likes and a
// known difficulty
func checkCollection(recipes []models.Recipe) error {
	seen := make(map[string]struct{}, len(recipes))
	for _, rec := range recipes {
		if rec.ID == "" {
			return fmt.Errorf("%w: recipe %q has no id", ErrInvalidCollection, rec.Title)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidCollection, rec.ID)
		}
		if rec.Likes < 0 {
			return fmt.Errorf("%w: recipe %s has negative likes", ErrInvalidCollection, rec.ID)
		}
		if !rec.Difficulty.Valid() {
			return fmt.Errorf("%w: recipe %s has unknown difficulty %q", ErrInvalidCollection, rec.ID, rec.Difficulty)
		}
		seen[rec.ID] = struct{}{}
	}
	return nil
}

func withEmptySlices(rec models.Recipe) models.Recipe {
	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}
	if rec.Instructions == nil {
		rec.Instructions = []string{}
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return rec
}

// persist writes next to the store. Callers hold the write lock.
func (r *RecipeRepository) persist(ctx context.Context, next []models.Recipe) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.store.Save(ctx, data); err != nil {
		r.metrics.StoreError("save")
		r.log.Error("failed to persist recipe snapshot", logger.Error(err))
		return fmt.Errorf("persist recipes: %w", err)
	}
	return nil
}

// Add validates draft, assigns id, createdAt and likes, prepends the new
// recipe and persists the whole collection. Blank ingredients, instructions
// and tags are dropped first.
func (r *RecipeRepository) Add(ctx context.Context, draft models.RecipeDraft) (models.Recipe, error) {
	draft = draft.Normalize()
	if err := r.validate.Struct(draft); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.uniqueID()
	if err != nil {
		return models.Recipe{}, err
	}

	rec := models.Recipe{
		ID:           id,
		Title:        draft.Title,
		Description:  draft.Description,
		Image:        draft.Image,
		CookTime:     draft.CookTime,
		Servings:     draft.Servings,
		Difficulty:   draft.Difficulty,
		Ingredients:  draft.Ingredients,
		Instructions: draft.Instructions,
		Author:       draft.Author,
		CreatedAt:    r.nextCreatedAt(),
		Likes:        0,
		Category:     draft.Category,
		Tags:         draft.Tags,
	}

	next := make([]models.Recipe, 0, len(r.recipes)+1)
	next = append(next, rec)
	next = append(next, r.recipes...)
	if err := r.persist(ctx, next); err != nil {
		return models.Recipe{}, err
	}
	r.recipes = next

	r.metrics.RecipeAdded(len(next))
	r.log.Info("recipe added", logger.String("id", rec.ID), logger.String("title", rec.Title))
	return rec.Clone(), nil
}

func (r *RecipeRepository) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := r.newID()
		if err != nil {
			return "", fmt.Errorf("generate recipe id: %w", err)
		}
		if r.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("generate recipe id: %d collisions in a row", maxIDAttempts)
}

// nextCreatedAt never goes backwards relative to the newest stored recipe
func (r *RecipeRepository) nextCreatedAt() time.Time {
	now := r.now().UTC()
	for _, rec := range r.recipes {
		if rec.CreatedAt.After(now) {
			now = rec.CreatedAt
		}
	}
	return now
}

func (r *RecipeRepository) indexOf(id string) int {
	return slices.IndexFunc(r.recipes, func(rec models.Recipe) bool { return rec.ID == id })
}

// Like adds exactly one like to the recipe with the given id and persists the
// collection. An unknown id is a no-op and reports ok=false.
func (r *RecipeRepository) Like(ctx context.Context, id string) (models.Recipe, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Recipe{}, false, nil
	}

	next := slices.Clone(r.recipes)
	next[idx].Likes++
	if err := r.persist(ctx, next); err != nil {
		return models.Recipe{}, true, err
	}
	r.recipes = next

	r.metrics.RecipeLiked()
	return next[idx].Clone(), true, nil
}

// Replace swaps in a whole collection and persists it
func (r *RecipeRepository) Replace(ctx context.Context, recipes []models.Recipe) error {
	if err := checkCollection(recipes); err != nil {
		return err
	}
	next := cloneAll(recipes)
	for i := range next {
		next[i] = withEmptySlices(next[i])
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.persist(ctx, next); err != nil {
		return err
	}
	r.recipes = next
	r.metrics.SetTotal(len(next))
	return nil
}

// Snapshot returns the collection encoded the way it is persisted
func (r *RecipeRepository) Snapshot() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, err := json.Marshal(r.recipes)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Flush writes the current collection to the store
func (r *RecipeRepository) Flush(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist(ctx, r.recipes)
}

// All returns every recipe in stored order
func (r *RecipeRepository) All() []models.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.recipes)
}

// Len reports the number of recipes
func (r *RecipeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recipes)
}

// GetByID returns the recipe with the given id, or ok=false
func (r *RecipeRepository) GetByID(id string) (models.Recipe, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexOf(id)
	if idx < 0 {
		return models.Recipe{}, false
	}
	return r.recipes[idx].Clone(), true
}

// Search returns the recipes matching query in stored order
func (r *RecipeRepository) Search(query string) []models.Recipe {
	return Search(r.All(), query)
}

// FilterByCategory returns the recipes in category in stored order
func (r *RecipeRepository) FilterByCategory(category string) []models.Recipe {
	return FilterByCategory(r.All(), category)
}

// Query applies a combined search, category filter and sort
func (r *RecipeRepository) Query(q Query) []models.Recipe {
	return q.Apply(r.All())
}

// Categories lists AllCategories and every category in use
func (r *RecipeRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Categories(r.recipes)
}

// Trending returns the first n recipes in stored order
func (r *RecipeRepository) Trending(n int) []models.Recipe {
	all := r.All()
	if n < 0 || n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// Recent returns the n most recently created recipes
func (r *RecipeRepository) Recent(n int) []models.Recipe {
	sorted := Sort(r.All(), SortRecent)
	if n < 0 || n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// ByAuthor returns the recipes published by authorID and their total likes
func (r *RecipeRepository) ByAuthor(authorID string) ([]models.Recipe, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Recipe, 0)
	total := 0
	for _, rec := range r.recipes {
		if rec.Author.ID != authorID {
			continue
		}
		out = append(out, rec.Clone())
		total += rec.Likes
	}
	return out, total
}

func cloneAll(recipes []models.Recipe) []models.Recipe {
	out := make([]models.Recipe, len(recipes))
	for i, rec := range recipes {
		out[i] = rec.Clone()
	}
	return out
}
