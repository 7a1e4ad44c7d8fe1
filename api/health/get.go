package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-api/api/types"
)

// Endpoints lists the public routes reported by the health check
var Endpoints = []string{
	"GET /",
	"GET /health",
	"GET /hello/{name}",
	"POST /find/person/wiki_url",
	"POST /find/youtube/videos",
}

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service health, version and search cache statistics when caching is enabled
// @Tags         meta
// @Produce      json
// @Success      200 {object} types.HealthResponse "Service is healthy"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    types.StatusHealthy,
			Service:   types.ServiceName,
			Version:   types.APIVersion,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Endpoints: Endpoints,
		}

		if deps != nil && deps.Search != nil {
			if provider, ok := deps.Search.(types.CacheStatsProvider); ok {
				if stats := provider.CacheStats(); stats != nil {
					response.Cache = stats
				}
			}
		}

		c.JSON(http.StatusOK, response)
	}
}
