package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/models"
	"github.com/pageza/recipe-share/backend/internal/types"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.GenerateToken(&types.TokenClaims{UserID: "u-1", Name: "Tester", Avatar: "https://example.com/a.png"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.Author{ID: "u-1", Name: "Tester", Avatar: "https://example.com/a.png"}, claims.Author())
	assert.Equal(t, "u-1", claims.Subject)
}

func TestValidateTokenRejects(t *testing.T) {
	svc := NewTokenService("test-secret")
	other := NewTokenService("other-secret")

	foreign, err := other.GenerateToken(&types.TokenClaims{UserID: "u-1", Name: "Tester"})
	require.NoError(t, err)

	expired, err := svc.GenerateToken(&types.TokenClaims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{UserID: "u-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        expired,
		"none algorithm": unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateTokenRequiresUser(t *testing.T) {
	_, err := NewTokenService("s").GenerateToken(&types.TokenClaims{Name: "nobody"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
