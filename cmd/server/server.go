package main

import (
	"fmt"

	"codeberg.org/antivibe/antivibe/internal/catalog"
	"codeberg.org/antivibe/antivibe/internal/config"
	"codeberg.org/antivibe/antivibe/internal/errors"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	hintLimit, err := RateLimitMiddleware(cfg.HintRateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		errors.InternalError(c, "error generating hint", fmt.Errorf("panic: %v", recovered))
		c.Abort()
	}))

	server := &Server{
		config:  cfg,
		catalog: catalog.New(),
		router:  router,
	}

	RegisterRoutes(router, server, hintLimit)

	return server, nil
}
