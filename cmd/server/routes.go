package main

import (
	"codeberg.org/antivibe/antivibe/api/rest/health"
	"codeberg.org/antivibe/antivibe/api/rest/hint"
	"codeberg.org/antivibe/antivibe/internal/errors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, hintLimit gin.HandlerFunc) {
	router.Use(RequestIDMiddleware(), RequestLogger(), CORSMiddleware())

	router.GET("/", health.RootHandler)
	router.GET("/health", health.Handler)

	api := router.Group("/api")

	{
		api.GET("/health", health.Handler)

		hint.RegisterRoutes(api, server.catalog, hintLimit)
	}

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})
}
