package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version of the reference hint service
const Version = "0.1.0"

// Handler godoc
// @Summary Health check
// @Description Reports that the hint service is reachable
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /api/health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Message: "API is working",
		Version: Version,
	})
}

// RootHandler godoc
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "Antivibe.ai API is running!",
		Version: Version,
	})
}
