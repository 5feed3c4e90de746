package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/renanmoretto/dias-uteis/internal/middleware"
)

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, RateLimiter).
//   - Adds request timeout handling (10 seconds).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.RateLimiter(),
	)

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/business-day", handler.GetBusinessDay)
		v1.GET("/business-day/next", handler.GetNextBusinessDay)
		v1.GET("/business-day/previous", handler.GetPreviousBusinessDay)
		v1.GET("/business-day/shift", handler.GetShift)
		v1.GET("/business-day/diff", handler.GetDiff)
		v1.GET("/business-day/range", handler.GetRange)
		v1.GET("/year/:year/business-days", handler.GetYearBusinessDays)
		v1.GET("/year/:year/holidays", handler.GetYearHolidays)
		v1.GET("/holidays/custom", handler.ListCustomHolidays)
		v1.POST("/holidays/custom", handler.AddCustomHoliday)
		v1.DELETE("/holidays/custom/:id", handler.RemoveCustomHoliday)
	}

	return router
}
