package types

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/pageza/recipe-share/backend/internal/models"
)

// TokenClaims represents the claims in a JWT token. They carry the
// current-user handle copied into a recipe's author on publish.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Author returns the handle as a recipe author snapshot
func (c *TokenClaims) Author() models.Author {
	return models.Author{ID: c.UserID, Name: c.Name, Avatar: c.Avatar}
}
