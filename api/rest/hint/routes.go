package hint

import (
	"github.com/gin-gonic/gin"
)

// registers hint routes. limit guards the generation endpoint and may be nil.
func RegisterRoutes(router *gin.RouterGroup, generator Generator, limit gin.HandlerFunc) {
	handlers := []gin.HandlerFunc{Handler(generator)}
	if limit != nil {
		handlers = append([]gin.HandlerFunc{limit}, handlers...)
	}

	router.POST("/hint", handlers...)
	router.GET("/problem-types", ProblemTypesHandler)
}
