//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "unicorns",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=unicorns sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "unicorns")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func seedUnicorns(t *testing.T, db *sql.DB) {
	t.Helper()
	exec := func(company string, valuation float64, joined time.Time, country, city, industry string) {
		_, err := db.Exec(`
            INSERT INTO unicorns (company, valuation, date_joined, country, city, industry, select_investors)
            VALUES ($1,$2,$3,$4,$5,$6,NULL)
        `, company, valuation, joined, country, city, industry)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	exec("Bytedance", 180, time.Date(2017, 4, 7, 0, 0, 0, 0, time.UTC), "China", "Beijing", "Artificial intelligence")
	exec("SpaceX", 100.3, time.Date(2012, 12, 1, 0, 0, 0, 0, time.UTC), "United States", "Hawthorne", "Other")
	exec("Stripe", 95, time.Date(2014, 1, 23, 0, 0, 0, 0, time.UTC), "United States", "", "Fintech")
}

func TestRepository_Integration_FetchRows(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)
	seedUnicorns(t, db)

	repo := NewCompanyRepository(db)
	header, rows, err := repo.FetchRows(context.Background())
	if err != nil {
		t.Fatalf("FetchRows err: %v", err)
	}
	if len(header) != 7 {
		t.Fatalf("header: %v", header)
	}

	cases := []struct {
		name      string
		row       int
		company   string
		valuation string
		joined    string
		city      string
	}{
		{name: "first row", row: 0, company: "Bytedance", valuation: "180.00", joined: "2017-04-07", city: "Beijing"},
		{name: "decimal valuation", row: 1, company: "SpaceX", valuation: "100.30", joined: "2012-12-01", city: "Hawthorne"},
		{name: "null city", row: 2, company: "Stripe", valuation: "95.00", joined: "2014-01-23", city: ""},
	}
	if len(rows) != len(cases) {
		t.Fatalf("want %d rows got %d", len(cases), len(rows))
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rows[tc.row]
			if got[0] != tc.company || got[1] != tc.valuation || got[2] != tc.joined || got[4] != tc.city {
				t.Fatalf("unexpected row %v", got)
			}
			if got[6] != "" {
				t.Fatalf("expected empty investors, got %q", got[6])
			}
		})
	}
}
