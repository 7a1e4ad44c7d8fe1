package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/search-api/api/health"
	"github.com/killallgit/search-api/api/hello"
	"github.com/killallgit/search-api/api/search"
	"github.com/killallgit/search-api/api/types"
	"github.com/killallgit/search-api/api/version"
	_ "github.com/killallgit/search-api/docs/swagger"
	"github.com/killallgit/search-api/pkg/config"
	apperrors "github.com/killallgit/search-api/pkg/errors"
)

// RouteOptions carries the shared rate limiting state for route registration
type RouteOptions struct {
	RateLimit          config.RateLimitConfig
	RateLimiters       *sync.Map
	CleanupStop        chan struct{}
	CleanupInitialized *sync.Once
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, opts RouteOptions) error {
	// Register public routes (no rate limiting)
	version.RegisterRoutes(engine)
	health.RegisterRoutes(engine, deps)
	hello.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())
	engine.NoMethod(MethodNotAllowedHandler())

	// Search routes hit external providers, so they get per-client rate limiting
	searchGroup := engine.Group("")
	if opts.RateLimit.Enabled && opts.RateLimiters != nil {
		searchGroup.Use(PerClientRateLimit(opts.RateLimiters, opts.CleanupStop, opts.CleanupInitialized, opts.RateLimit.RPS, opts.RateLimit.Burst))
	}
	search.RegisterRoutes(searchGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  types.StatusError,
			"message": "The requested endpoint was not found",
			"error":   apperrors.ErrCodeNotFound,
			"path":    c.Request.URL.Path,
		})
	}
}

// MethodNotAllowedHandler handles requests to known paths with the wrong method
func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"status":  types.StatusError,
			"message": "Method not allowed",
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
		})
	}
}
