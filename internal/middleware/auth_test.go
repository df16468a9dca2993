package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/recipe-share/backend/internal/types"
)

type stubValidator map[string]*types.TokenClaims

func (s stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

func authRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.GET("/me", func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": claims.UserID})
	})
	return router
}

func doGet(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router := authRouter(RequireAuth(stubValidator{"good": {UserID: "u-1", Name: "Tester"}}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good", http.StatusOK, `{"user":"u-1"}`},
		{"missing", "", http.StatusUnauthorized, `{"error":"missing authorization header"}`},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, `{"error":"invalid authorization header format"}`},
		{"bad token", "Bearer bad", http.StatusUnauthorized, `{"error":"invalid token"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	router := authRouter(OptionalAuth(stubValidator{"good": {UserID: "u-1"}}))

	assert.JSONEq(t, `{"user":"u-1"}`, doGet(router, "Bearer good").Body.String())
	assert.JSONEq(t, `{"user":null}`, doGet(router, "Bearer bad").Body.String())
	assert.JSONEq(t, `{"user":null}`, doGet(router, "").Body.String())
}
