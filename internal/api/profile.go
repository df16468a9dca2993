package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/repository"
)

// ProfileResponse is a user's published recipes and the likes they collected
type ProfileResponse struct {
	User       *UserHandle     `json:"user,omitempty"`
	Recipes    []models.Recipe `json:"recipes"`
	TotalLikes int             `json:"totalLikes"`
}

type ProfileHandler struct {
	repo *repository.RecipeRepository
}

func NewProfileHandler(repo *repository.RecipeRepository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, auth middleware.TokenValidator) {
	router.GET("/users/:id/recipes", h.UserRecipes)
	router.GET("/profile", middleware.RequireAuth(auth), h.MyProfile)
}

// UserRecipes serves any user's recipes and total likes
func (h *ProfileHandler) UserRecipes(c *gin.Context) {
	recipes, total := h.repo.ByAuthor(c.Param("id"))
	c.JSON(http.StatusOK, ProfileResponse{Recipes: recipes, TotalLikes: total})
}

// MyProfile serves the current user's handle, recipes and total likes
func (h *ProfileHandler) MyProfile(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipes, total := h.repo.ByAuthor(claims.UserID)
	c.JSON(http.StatusOK, ProfileResponse{
		User:       &UserHandle{ID: claims.UserID, Name: claims.Name, Avatar: claims.Avatar},
		Recipes:    recipes,
		TotalLikes: total,
	})
}
