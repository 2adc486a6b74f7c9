package main

import (
	"codeberg.org/antivibe/antivibe/internal/catalog"
	"codeberg.org/antivibe/antivibe/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config  *config.Config
	catalog *catalog.Catalog
	router  *gin.Engine
}
