package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/guttosm/unicornpulse/config"
	"github.com/guttosm/unicornpulse/internal/charts"
	"github.com/guttosm/unicornpulse/internal/ingestion"
)

const sampleCSV = `Company,Valuation ($B),Date Joined,Country,City,Industry,Select Investors
Stripe,$95,2014-01-23,United States,San Francisco,Fintech,"Khosla Ventures, LowercaseCapital"
Klarna,$45.6,2011-12-12,Sweden,Stockholm,Fintech,Institutional Venture Partners
Canva,$40,2018-01-08,Australia,Surry Hills,Internet software & services,Sequoia Capital China
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "unicorns.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func useConfig(t *testing.T, cfg config.Config) {
	t.Helper()
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = cfg
}

func TestLoadDataset_Sources(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	cases := []struct {
		name    string
		cfg     config.Config
		want    int
		wantErr bool
	}{
		{name: "csv", cfg: config.Config{Dataset: config.DatasetConfig{Source: config.SourceCSV, Path: path}}, want: 3},
		{name: "empty source means csv", cfg: config.Config{Dataset: config.DatasetConfig{Path: path}}, want: 3},
		{name: "missing file", cfg: config.Config{Dataset: config.DatasetConfig{Source: config.SourceCSV, Path: filepath.Join(t.TempDir(), "nope.csv")}}, wantErr: true},
		{name: "unknown source", cfg: config.Config{Dataset: config.DatasetConfig{Source: "ftp"}}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := LoadDataset(context.Background(), tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ds.Len() != tc.want {
				t.Fatalf("len=%d want %d", ds.Len(), tc.want)
			}
		})
	}
}

func TestLoadDataset_SchemaError(t *testing.T) {
	path := writeCSV(t, "Company,Valuation ($B),Country\nStripe,$95,United States\n")

	_, err := LoadDataset(context.Background(), config.Config{Dataset: config.DatasetConfig{Path: path}})
	var schemaErr *ingestion.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}

func TestLoadDataset_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	rows := sqlmock.NewRows([]string{"company", "valuation", "date_joined", "country", "city", "industry", "select_investors"}).
		AddRow("Bytedance", "180.00", "2017-04-07", "China", "Beijing", "Artificial intelligence", "Sequoia Capital China").
		AddRow("SpaceX", "100.30", "2012-12-01", "United States", "Hawthorne", "Other", "")
	mock.ExpectQuery(`(?s)SELECT.+FROM unicorns`).WillReturnRows(rows)
	mock.ExpectClose()

	old := postgresOpener
	postgresOpener = func(cfg config.Config) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { postgresOpener = old })

	ds, err := LoadDataset(context.Background(), config.Config{Dataset: config.DatasetConfig{Source: config.SourcePostgres}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("len=%d want 2", ds.Len())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// TestLoadDataset_PostgresFailure expects ping failure against an unreachable host.
func TestLoadDataset_PostgresFailure(t *testing.T) {
	cfg := config.Config{
		Dataset: config.DatasetConfig{Source: config.SourcePostgres},
		Postgres: config.PostgresConfig{
			Host:     "127.0.0.1",
			Port:     54329, // unlikely mapped
			User:     "x",
			Password: "y",
			DBName:   "z",
			SSLMode:  "disable",
		},
	}
	if _, err := LoadDataset(context.Background(), cfg); err == nil {
		t.Fatalf("expected error connecting to invalid DB")
	}
}

func TestInitializeApp_LoadFailure(t *testing.T) {
	useConfig(t, config.Config{Dataset: config.DatasetConfig{Source: config.SourceCSV, Path: filepath.Join(t.TempDir(), "missing.csv")}})

	r, cleanup, err := InitializeApp(context.Background())
	if err == nil || r != nil || cleanup != nil {
		if cleanup != nil {
			cleanup()
		}
		t.Fatalf("expected error from InitializeApp with a missing dataset")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	useConfig(t, config.Config{
		Server:  config.ServerConfig{RateLimitPerMinute: 100},
		Dataset: config.DatasetConfig{Source: config.SourceCSV, Path: writeCSV(t, sampleCSV)},
		Charts:  config.ChartsConfig{HistogramBins: 4},
	})

	router, cleanup, err := InitializeApp(context.Background())
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	if w := get("/healthz"); w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}
	if w := get("/readyz"); w.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w.Code)
	}

	w := get("/api/v1/industries/histogram?industry=Fintech")
	if w.Code != http.StatusOK {
		t.Fatalf("histogram status=%d body=%s", w.Code, w.Body.String())
	}
	var spec charts.Spec
	if err := json.Unmarshal(w.Body.Bytes(), &spec); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(spec.Data) != 1 || len(spec.Data[0].Buckets) != 4 {
		t.Fatalf("expected one trace with the configured 4 buckets: %+v", spec.Data)
	}
	total := 0
	for _, b := range spec.Data[0].Buckets {
		total += b.Count
	}
	if total != 2 {
		t.Fatalf("bucket counts sum to %d, want 2 fintech companies", total)
	}

	if w := get("/api/v1/industries/histogram?industry=Space"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown industry status=%d", w.Code)
	}

	cleanup()
	if w := get("/readyz"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz after cleanup status=%d", w.Code)
	}
}
