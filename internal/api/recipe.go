package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/repository"
)

const (
	defaultTrendingLimit = 3
	defaultRecentLimit   = 4
)

// RemoteRecipes is the remote recipes API. When configured it serves title
// searches and recipes missing from the local collection.
type RemoteRecipes interface {
	SearchByTitle(ctx context.Context, title string) []models.Recipe
	Get(ctx context.Context, id string) (models.Recipe, bool)
}

type RecipeHandler struct {
	repo   *repository.RecipeRepository
	remote RemoteRecipes
	log    logger.Logger
}

func NewRecipeHandler(repo *repository.RecipeRepository, remote RemoteRecipes, log logger.Logger) *RecipeHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &RecipeHandler{repo: repo, remote: remote, log: log}
}

// RegisterRoutes mounts the recipe routes. likeLimiter may be nil.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, auth middleware.TokenValidator, likeLimiter *middleware.RateLimiter) {
	like := []gin.HandlerFunc{middleware.OptionalAuth(auth)}
	if likeLimiter != nil {
		like = append(like, likeLimiter.PerRecipeRateLimitMiddleware())
	}
	like = append(like, h.LikeRecipe)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/search", h.SearchByTitle)
		recipes.GET("/trending", h.Trending)
		recipes.GET("/recent", h.Recent)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.RequireAuth(auth), h.CreateRecipe)
		recipes.POST("/:id/like", like...)
	}
	router.GET("/categories", h.Categories)
}

// ListRecipes serves GET /recipes?q=&category=&sort=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	sortKey, ok := repository.ParseSortKey(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be one of recent, popular, quickest, alphabetical"})
		return
	}

	recipes := h.repo.Query(repository.Query{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Sort:     sortKey,
	})
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SearchByTitle serves GET /recipes/search?title=. It asks the remote API
// when one is configured and searches locally otherwise.
func (h *RecipeHandler) SearchByTitle(c *gin.Context) {
	title := c.Query("title")
	var recipes []models.Recipe
	if h.remote != nil {
		recipes = h.remote.SearchByTitle(c.Request.Context(), title)
	} else {
		recipes = h.repo.Search(title)
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) Trending(c *gin.Context) {
	n, ok := limitParam(c, defaultTrendingLimit)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": h.repo.Trending(n)})
}

func (h *RecipeHandler) Recent(c *gin.Context) {
	n, ok := limitParam(c, defaultRecentLimit)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": h.repo.Recent(n)})
}

// GetRecipe serves a local recipe, falling back to the remote API on a miss
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.repo.GetByID(id)
	if !ok && h.remote != nil {
		recipe, ok = h.remote.Get(c.Request.Context(), id)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe publishes a recipe authored by the current user
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft models.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	draft.Author = claims.Author()

	recipe, err := h.repo.Add(c.Request.Context(), draft)
	switch {
	case errors.Is(err, repository.ErrInvalidDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.log.Error("failed to create recipe", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) LikeRecipe(c *gin.Context) {
	recipe, found, err := h.repo.Like(c.Request.Context(), c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		h.log.Error("failed to like recipe", logger.String("id", c.Param("id")), logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save like"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// Categories lists the filter categories and the categories offered when publishing
func (h *RecipeHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":        h.repo.Categories(),
		"publishCategories": repository.PublishCategories,
	})
}

func limitParam(c *gin.Context, def int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return n, true
}
