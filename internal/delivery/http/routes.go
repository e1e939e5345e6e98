package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutrilog/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))
	}

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Prefixed-id entry points
	router.POST("/scan", handler.Scan)
	router.GET("/scan", handler.ScanQuery)

	// Direct operation endpoints
	router.POST("/barcode", handler.ScanBarcode)
	router.POST("/water", handler.LogWater)
	router.POST("/workout", handler.LogWorkout)
	router.GET("/workouts/:id", handler.GetWorkout)

	// Daily totals
	totals := router.Group("/totals")
	{
		totals.GET("/water", handler.TotalsWater)
		totals.GET("/workout", handler.TotalsWorkout)
		totals.GET("/nutrition", handler.TotalsNutrition)
		totals.GET("/day", handler.TotalsDay)
	}

	return router
}
