package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-share/backend/internal/logger"
	"github.com/pageza/recipe-share/backend/internal/metrics"
	"github.com/pageza/recipe-share/backend/internal/middleware"
	"github.com/pageza/recipe-share/backend/internal/repository"
)

// Deps are the collaborators the HTTP API is built from. Remote, LikeLimiter
// and Metrics are optional.
type Deps struct {
	Repo        *repository.RecipeRepository
	Auth        TokenIssuer
	Remote      RemoteRecipes
	LikeLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	Log         logger.Logger
	CORSOrigins []string
	// DevLogin mounts POST /auth/login, which issues tokens for any name
	DevLogin bool
}

// HealthCheck handles health check requests
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = logger.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Recovery(d.Log))
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(middleware.CORS(d.CORSOrigins))

	router.GET("/health", HealthCheck)
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	NewRecipeHandler(d.Repo, d.Remote, d.Log).RegisterRoutes(v1, d.Auth, d.LikeLimiter)
	NewProfileHandler(d.Repo).RegisterRoutes(v1, d.Auth)
	NewAuthHandler(d.Auth, d.Log).RegisterRoutes(v1, d.DevLogin)

	return router
}
