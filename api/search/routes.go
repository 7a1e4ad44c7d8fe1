package search

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-api/api/types"
)

// RegisterRoutes registers search routes on the given group
func RegisterRoutes(router gin.IRoutes, deps *types.Dependencies) {
	router.POST("/find/person/wiki_url", PostPerson(deps))
	router.POST("/find/youtube/videos", PostVideos(deps))
}
