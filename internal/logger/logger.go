package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/unicornpulse/config"
)

var (
	base        zerolog.Logger
	initialized bool
	out         io.Writer = os.Stdout
)

// Init configures the global JSON logger from the LOG_* settings.
//
// Settings:
//   - Level: debug|info|warn|error (default: info)
//   - Pretty: console output instead of JSON (default: false)
func Init(cfg config.LogConfig) {
	level := parseLevel(cfg.Level)

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Str("service", "unicornpulse").Logger().Level(level)
	initialized = true
}

// L returns the global logger. Call Init() once on startup; until then the
// logger writes JSON at info level.
func L() *zerolog.Logger {
	if !initialized {
		Init(config.LogConfig{})
	}
	return &base
}

// Component returns a child logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
