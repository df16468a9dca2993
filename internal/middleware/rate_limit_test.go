package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewLikeRateLimiter(client, limit, nil)
	fixed := time.Date(2025, 3, 1, 12, 0, 30, 0, time.UTC)
	rl.now = func() time.Time { return fixed }
	return rl, mr
}

func TestIsAllowed(t *testing.T) {
	rl, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	allowed, remaining, reset, err := rl.IsAllowed(ctx, "user:1:r1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 1, 0, 0, time.UTC), reset)

	allowed, _, _, err = rl.IsAllowed(ctx, "user:1:r1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, remaining, _, err = rl.IsAllowed(ctx, "user:1:r1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, remaining, _, err = rl.IsAllowed(ctx, "user:1:r2")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")
	assert.Equal(t, 1, remaining)
}

func TestPerRecipeRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)

	router := gin.New()
	router.POST("/recipes/:id/like", rl.PerRecipeRateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	post := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		return w
	}

	first := post("/recipes/1/like")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := post("/recipes/1/like")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate limit exceeded")

	assert.Equal(t, http.StatusOK, post("/recipes/2/like").Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	rl, mr := newTestLimiter(t, 1)
	mr.Close()

	router := gin.New()
	router.POST("/recipes/:id/like", rl.PerRecipeRateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recipes/1/like", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}
