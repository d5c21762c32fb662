package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/krishvsoni/suno/api/health"
	"github.com/krishvsoni/suno/api/middleware"
	"github.com/krishvsoni/suno/api/play"
	"github.com/krishvsoni/suno/api/search"
	"github.com/krishvsoni/suno/api/types"
	"github.com/krishvsoni/suno/api/version"
	_ "github.com/krishvsoni/suno/docs/swagger"
	"github.com/krishvsoni/suno/pkg/config"
)

// RegisterRoutes registers all API routes. rateLimit may return nil to leave
// the API group unthrottled.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimit func() gin.HandlerFunc) error {
	if deps == nil || deps.Music == nil {
		return fmt.Errorf("music service is not configured")
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	engine.GET("/", Welcome())

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	apiGroup := engine.Group("/api")
	if rateLimit != nil {
		if limiter := rateLimit(); limiter != nil {
			apiGroup.Use(limiter)
		}
	}

	if deps.Cache != nil {
		apiGroup.Use(middleware.ResponseCache(middleware.CacheConfig{
			Store: deps.Cache,
			TTL:   cfg.Cache.DefaultTTL,
			TTLByPath: map[string]time.Duration{
				"/api/search": cfg.Cache.SearchTTL,
				"/api/play":   cfg.Cache.PlayTTL,
			},
		}))
	}

	search.RegisterRoutes(apiGroup.Group("/search"), deps)
	play.RegisterRoutes(apiGroup.Group("/play"), deps)

	return nil
}

// Welcome answers the root path
// @Summary      Welcome message
// @Tags         system
// @Produce      json
// @Success      200 {object} types.MessageResponse
// @Router       / [get]
func Welcome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.MessageResponse{Message: "Welcome to Suno API"})
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error: "The requested endpoint was not found",
		})
	}
}
