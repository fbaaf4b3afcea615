package ingestion

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/unicornpulse/internal/domain/models"
	"github.com/guttosm/unicornpulse/internal/logger"
	"github.com/guttosm/unicornpulse/internal/storage"
)

// LoadFile opens path and parses it into a Dataset.
//
// The dataset is loaded exactly once at process start; any error is returned
// unchanged (wrapped) so the caller can abort startup.
func LoadFile(ctx context.Context, path string) (*models.Dataset, error) {
	start := time.Now()
	lg := logger.Component("ingestion")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := Parse(ctx, f)
	if err != nil {
		lg.Error().Str("path", path).Err(err).Msg("dataset load failed")
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	lg.Info().
		Str("source", "csv").
		Str("path", path).
		Int("rows", ds.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
	return ds, nil
}

// LoadRepository reads the dataset from a database-backed repository and runs
// the same normalization as the CSV source.
func LoadRepository(ctx context.Context, repo storage.CompanyRepository) (*models.Dataset, error) {
	start := time.Now()
	lg := logger.Component("ingestion")

	header, rows, err := repo.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset rows: %w", err)
	}

	b, err := newBuilder(header)
	if err != nil {
		return nil, err
	}
	for i, rec := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// line numbers mirror a CSV export: header is line 1
		if err := b.add(i+2, rec); err != nil {
			lg.Error().Str("source", "postgres").Err(err).Msg("dataset load failed")
			return nil, err
		}
	}

	ds := b.dataset()
	lg.Info().
		Str("source", "postgres").
		Int("rows", ds.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
	return ds, nil
}
