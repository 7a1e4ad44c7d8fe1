package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-api/api/types"
)

// Get handles root requests
// @Summary      Service banner
// @Description  Reports that the service is up
// @Tags         meta
// @Produce      json
// @Success      200 {object} types.RootResponse "Service banner"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.RootResponse{
			Message: "Hello World",
			Status:  types.StatusActive,
			Service: types.ServiceName,
			Version: types.APIVersion,
		})
	}
}
