package hello

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-api/api/types"
	"github.com/killallgit/search-api/internal/validation"
)

// Get handles greeting requests
// @Summary      Greet a name
// @Description  Returns a greeting for the given path segment. Surrounding whitespace is trimmed.
// @Tags         hello
// @Produce      json
// @Param        name path string true "Name to greet"
// @Success      200 {object} types.HelloResponse "Greeting"
// @Failure      400 {object} types.DetailResponse "Name is empty after trimming"
// @Router       /hello/{name} [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, ok := validation.TrimmedString(c.Param("name"))
		if !ok {
			types.SendBadRequest(c, "Name cannot be empty")
			return
		}

		c.JSON(http.StatusOK, types.HelloResponse{
			Message: "Hello " + name,
			Status:  types.StatusSuccess,
		})
	}
}
