package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Dataset sources understood by DATASET_SOURCE.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	DATASET_SOURCE=csv
//	DATASET_PATH=unicorns.csv
//	HISTOGRAM_BINS=10
//	LOG_LEVEL=info
//	POSTGRES_HOST=localhost   # only read when DATASET_SOURCE=postgres
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Dataset  DatasetConfig  // Where the unicorn dataset is loaded from
	Postgres PostgresConfig // PostgreSQL connection settings (postgres source only)
	Charts   ChartsConfig   // Chart defaults
	Log      LogConfig      // Logger settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int           // Requests allowed per client IP per minute
	RequestTimeout     time.Duration // Per-request context timeout
}

// DatasetConfig selects the dataset source.
//
// Fields:
//   - Source: "csv" (default) or "postgres".
//   - Path: CSV file path, used when Source is "csv".
type DatasetConfig struct {
	Source string
	Path   string
}

// PostgresConfig defines connection details for the read-only PostgreSQL source.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// ChartsConfig holds chart defaults that operators may tune.
type ChartsConfig struct {
	HistogramBins int
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string // debug|info|warn|error
	Pretty bool   // console writer instead of JSON
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read by cmd and app wiring.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("DATASET_SOURCE", SourceCSV)
	viper.SetDefault("DATASET_PATH", "unicorns.csv")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "unicorns")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("HISTOGRAM_BINS", 10)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
			RequestTimeout:     viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Dataset: DatasetConfig{
			Source: strings.ToLower(strings.TrimSpace(viper.GetString("DATASET_SOURCE"))),
			Path:   viper.GetString("DATASET_PATH"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Charts: ChartsConfig{
			HistogramBins: viper.GetInt("HISTOGRAM_BINS"),
		},
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Pretty: viper.GetBool("LOG_PRETTY"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	if problems := validateConfig(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Invalid configuration: %v\n", problems)
	}
}

// DSN builds the PostgreSQL connection string used by database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig returns the names of missing or invalid settings.
//
// Postgres settings are only checked when the postgres dataset source is selected.
func validateConfig(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Server.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT")
	}
	if cfg.Charts.HistogramBins < 1 || cfg.Charts.HistogramBins > 100 {
		problems = append(problems, "HISTOGRAM_BINS")
	}

	switch cfg.Dataset.Source {
	case SourceCSV:
		if cfg.Dataset.Path == "" {
			problems = append(problems, "DATASET_PATH")
		}
	case SourcePostgres:
		if cfg.Postgres.Host == "" {
			problems = append(problems, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			problems = append(problems, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			problems = append(problems, "POSTGRES_USER")
		}
		if cfg.Postgres.DBName == "" {
			problems = append(problems, "POSTGRES_DB")
		}
	default:
		problems = append(problems, "DATASET_SOURCE")
	}

	return problems
}
