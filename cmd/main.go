package main

//
//  @title           dias-uteis API
//  @version         1.0
//  @description     Brazilian business-day calendar service.
//  @termsOfService  https://github.com/renanmoretto/dias-uteis
//  @contact.name    API Support
//  @contact.url     https://github.com/renanmoretto/dias-uteis
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        business-day
//  @tag.description Business-day queries and arithmetic
//
//  @tag.name        year
//  @tag.description Per-year business-day and holiday listings
//
//  @tag.name        custom-holidays
//  @tag.description Management of user-defined holidays
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renanmoretto/dias-uteis/config"
	_ "github.com/renanmoretto/dias-uteis/docs" // swagger docs
	"github.com/renanmoretto/dias-uteis/internal/app"
	"github.com/renanmoretto/dias-uteis/internal/calendar"
	"github.com/renanmoretto/dias-uteis/internal/export"
	"github.com/renanmoretto/dias-uteis/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the dias-uteis application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API exposing the business-day calendar.
//   - export: Writes yearly calendar CSVs to a directory and exits.
//
// Flags:
//   - --mode:       Execution mode ("api" or "export"). Default: "api".
//   - --port:       Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --dir:        Output directory for export mode. Default: "./data/output".
//   - --start-year: First year to export. Default: current year.
//   - --end-year:   Last year to export. Default: current year.
//   - --parallel:   How many years to render concurrently (0=auto up to CPU, max 7).
//   - --force:      Rewrite files that already exist.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	year := time.Now().Year()

	mode := flag.String("mode", "api", "Mode: api or export")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	dir := flag.String("dir", "./data/output", "Output directory for export mode")
	startYear := flag.Int("start-year", year, "First year to export")
	endYear := flag.Int("end-year", year, "Last year to export")
	parallel := flag.Int("parallel", 0, "How many years to render concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Rewrite files that already exist")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "export":
		// Export mode works offline against the national calendar; no
		// database connection is needed.
		logger.L().Info().Msg("running export")

		if err := export.WriteYears(ctx, *dir, calendar.NewBrazil(), *startYear, *endYear, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
