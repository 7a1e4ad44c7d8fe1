package search

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/killallgit/search-api/api/types"
	searchsvc "github.com/killallgit/search-api/internal/services/search"
)

// PostPerson handles Wikipedia URL lookups for a person
// @Summary      Find Wikipedia URLs for a person
// @Description  Runs a web search for "Get Wiki URL for Telugu {craft} {name}" and returns up to three result URLs
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.ActorSearchRequest true "Person to look up"
// @Success      200 {object} types.SearchResponse "Search results, status is false when nothing was found"
// @Failure      422 {object} types.ErrorResponse "Request body failed validation"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /find/person/wiki_url [post]
func PostPerson(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ActorSearchRequest
		if !types.BindAndValidate(c, &req) {
			return
		}

		if deps == nil || deps.Search == nil {
			zerolog.Ctx(c.Request.Context()).Error().Msg("Search service not configured")
			types.SendInternalError(c)
			return
		}

		query := searchsvc.PersonQuery(req.Name, req.Craft)
		urls := deps.Search.PersonSearch(c.Request.Context(), query)

		types.SendSuccess(c, searchsvc.ShapePersonResults(urls))
	}
}
