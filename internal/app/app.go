package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/renanmoretto/dias-uteis/config"
	"github.com/renanmoretto/dias-uteis/internal/api"
	"github.com/renanmoretto/dias-uteis/internal/logger"
	"github.com/renanmoretto/dias-uteis/internal/service"
	"github.com/renanmoretto/dias-uteis/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (HolidaysRepository).
//   - Creates the calendar service and loads persisted custom holidays.
//   - Warms the holiday cache for the configured year window.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewHolidaysRepository(db)
	svc := service.NewCalendarService(repo)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.Reload(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to load custom holidays: %w", err)
	}

	if n := cfg.Calendar.PreloadYears; n > 0 {
		year := time.Now().Year()
		if err := svc.WarmYears(ctx, year-n, year+n); err != nil {
			logger.L().Warn().Err(err).Msg("holiday cache warm-up incomplete")
		}
	}

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
