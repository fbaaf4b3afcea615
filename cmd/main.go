package main

//
//  @title           unicornpulse API
//  @version         1.0
//  @description     Unicorn company valuation dashboard: chart specs for the overview and industry pages.
//  @termsOfService  https://github.com/guttosm/unicornpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/unicornpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        pages
//  @tag.description Dashboard page registry
//
//  @tag.name        overview
//  @tag.description Overview page charts
//
//  @tag.name        industries
//  @tag.description Industry valuations page
//
//  @tag.name        companies
//  @tag.description Data table, export and summary
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

	"github.com/guttosm/unicornpulse/config"
	_ "github.com/guttosm/unicornpulse/docs" // swagger docs
	"github.com/guttosm/unicornpulse/internal/app"
	"github.com/guttosm/unicornpulse/internal/charts"
	"github.com/guttosm/unicornpulse/internal/logger"
	"github.com/guttosm/unicornpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
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

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback run before the server stops accepting requests.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	// mark not-ready before draining connections
	cleanup()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.L().Info().Msg("server exited gracefully")
}

// validate loads the dataset and logs its summary without serving it.
func validate(ctx context.Context, cfg config.Config) error {
	ds, err := app.LoadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	sum := service.NewDashboardService(ds, charts.DefaultOptions(), cfg.Charts.HistogramBins).Summary(ctx)
	ev := logger.L().Info().
		Int("companies", sum.Companies).
		Float64("total_valuation", sum.TotalValuation).
		Int("countries", sum.Countries).
		Int("industries", sum.Industries)
	if sum.FirstJoined != nil {
		ev = ev.Time("first_joined", *sum.FirstJoined).Time("last_joined", *sum.LastJoined)
	}
	ev.Msg("dataset valid")
	return nil
}

// main is the entry point of the unicornpulse application.
//
// Modes (selected via --mode flag):
//   - api:      Loads the dataset once and serves the dashboard API.
//   - validate: Loads the dataset, logs its summary and exits (non-zero on failure).
//
// Flags:
//   - --mode: Execution mode ("api" or "validate"). Default: "api".
//   - --data: CSV file to load; overrides DATASET_PATH and selects the csv source.
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	logger.Init(config.AppConfig.Log)

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or validate")
	data := flag.String("data", "", "CSV dataset path (overrides DATASET_PATH)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	if *data != "" {
		config.AppConfig.Dataset.Source = config.SourceCSV
		config.AppConfig.Dataset.Path = *data
	}

	switch *mode {
	case "validate":
		logger.L().Info().Str("source", config.AppConfig.Dataset.Source).Msg("validating dataset")
		if err := validate(ctx, config.AppConfig); err != nil {
			logger.L().Fatal().Err(err).Msg("dataset invalid")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
