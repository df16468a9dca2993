package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/types"
)

// userNamespace derives stable user ids from display names for dev logins
var userNamespace = uuid.MustParse("6f1b7c52-3c1e-4c7e-9a43-5d2f0e9b8a10")

// TokenIssuer issues and validates current-user tokens
type TokenIssuer interface {
	middleware.TokenValidator
	GenerateToken(claims *types.TokenClaims) (string, error)
}

type LoginRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  UserHandle `json:"user"`
}

// UserHandle is the current user as the frontend sees it
type UserHandle struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthHandler struct {
	tokens TokenIssuer
	log    logger.Logger
}

func NewAuthHandler(tokens TokenIssuer, log logger.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log}
}

// RegisterRoutes mounts /auth. The login route is only mounted when
// devLogin is set since it trusts the caller's claimed identity.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, devLogin bool) {
	auth := router.Group("/auth")
	{
		if devLogin {
			auth.POST("/login", h.Login)
		}
		auth.GET("/me", middleware.RequireAuth(h.tokens), h.Me)
	}
}

// Login issues a token for the given user handle. Without an id the id is
// derived from the name so repeated logins map to the same author.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id := req.ID
	if id == "" {
		id = uuid.NewSHA1(userNamespace, []byte(req.Name)).String()
	}

	token, err := h.tokens.GenerateToken(&types.TokenClaims{UserID: id, Name: req.Name, Avatar: req.Avatar})
	if err != nil {
		h.log.Error("failed to issue token", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  UserHandle{ID: id, Name: req.Name, Avatar: req.Avatar},
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, UserHandle{ID: claims.UserID, Name: claims.Name, Avatar: claims.Avatar})
}
