package hello

import "github.com/gin-gonic/gin"

// RegisterRoutes registers greeting routes
func RegisterRoutes(engine *gin.Engine) {
	engine.GET("/hello/:name", Get())
}
