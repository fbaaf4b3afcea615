package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/unicornpulse/config"
	"github.com/guttosm/unicornpulse/internal/api"
	"github.com/guttosm/unicornpulse/internal/charts"
	"github.com/guttosm/unicornpulse/internal/domain/models"
	"github.com/guttosm/unicornpulse/internal/ingestion"
	"github.com/guttosm/unicornpulse/internal/logger"
	"github.com/guttosm/unicornpulse/internal/service"
	"github.com/guttosm/unicornpulse/internal/storage"
)

var errShuttingDown = errors.New("shutting down")

// LoadDataset reads the dataset once from the configured source.
//
// Sources:
//   - csv: the file at cfg.Dataset.Path.
//   - postgres: the read-only unicorns table; the connection is closed as soon
//     as the rows are read.
func LoadDataset(ctx context.Context, cfg config.Config) (*models.Dataset, error) {
	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		defer func() { _ = db.Close() }()
		return ingestion.LoadRepository(ctx, storage.NewCompanyRepository(db))

	case config.SourceCSV, "":
		return ingestion.LoadFile(ctx, cfg.Dataset.Path)

	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Loads the dataset from the configured source (LoadDataset).
//   - Initializes the dashboard service with the default chart styling.
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function that marks the service as not ready.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	ds, err := LoadDataset(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewDashboardService(ds, charts.DefaultOptions(), cfg.Charts.HistogramBins)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, cfg.Server)

	// The dataset never changes after load, so readiness only flips on shutdown.
	var draining atomic.Bool
	api.NewHealthHandler(func() error {
		if draining.Load() {
			return errShuttingDown
		}
		return nil
	}).Register(router)

	lg := logger.Component("app")
	lg.Info().
		Str("source", cfg.Dataset.Source).
		Int("companies", ds.Len()).
		Msg("dashboard ready")

	cleanup := func() {
		draining.Store(true)
	}

	return router, cleanup, nil
}
