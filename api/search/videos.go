package search

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/killallgit/search-api/api/types"
	searchsvc "github.com/killallgit/search-api/internal/services/search"
)

// PostVideos handles YouTube video searches
// @Summary      Search YouTube videos
// @Description  Returns up to num_results videos (default 3, max 50) matching search_text
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.SearchQuery true "Video search parameters"
// @Success      200 {object} types.SearchResponse "Search results, status is false when nothing was found"
// @Failure      422 {object} types.ErrorResponse "Request body failed validation"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /find/youtube/videos [post]
func PostVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchQuery
		if !types.BindAndValidate(c, &req) {
			return
		}

		if deps == nil || deps.Search == nil {
			zerolog.Ctx(c.Request.Context()).Error().Msg("Search service not configured")
			types.SendInternalError(c)
			return
		}

		videos := deps.Search.VideoSearch(c.Request.Context(), req.SearchText, req.Limit())

		types.SendSuccess(c, searchsvc.ShapeVideoResults(req.SearchText, videos))
	}
}
