package http

import (
	"github.com/brandyemurray/compare-and-save/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidators()

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	if handler.renderer != nil {
		router.SetHTMLTemplate(handler.renderer.Templates())
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Input form, preview and print-only view
	router.GET("/", handler.Index)
	router.POST("/preview", handler.Preview)
	router.POST("/print", handler.SubmitPrint)
	router.GET("/print/:id", handler.PrintSheet)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		cards := v1.Group("/cards")
		{
			cards.POST("/classify", handler.ClassifyCards)
			cards.POST("/paginate", handler.PaginateCards)
			cards.POST("/print", handler.CreatePrintSheet)
			cards.GET("/print/:id", handler.GetPrintSheet)
		}
	}

	return router
}
