package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"game-generator-api/internal/config"
	"game-generator-api/internal/middleware"
	"game-generator-api/internal/services"
)

// maxRequestBodySize caps prompt payloads on the local server
const maxRequestBodySize = 1 << 20

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	GameService services.GameService
	Config      *config.Config
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *RouterConfig) {
	gameHandler := NewGameHandler(cfg.GameService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"service":         "game-generator-api",
			"version":         "1.0.0",
			"timestamp":       time.Now().UTC(),
			"deployment_mode": config.GetDeploymentMode(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		games := v1.Group("/games")
		{
			// Method dispatch (OPTIONS preflight, POST, 405) lives in the handler
			// so the local server and the lambda answer identically.
			games.Any("/generate", gameHandler.GenerateGame)
			games.GET("/examples", gameHandler.ListExamples)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestSizeLimit(maxRequestBodySize))
	router.Use(middleware.RateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	router.Use(middleware.StructuredLogger())
}
