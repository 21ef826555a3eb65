package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultWorkers is the worker-pool size used when the configured value
// is missing or non-positive.
const defaultWorkers = 3

// Config holds application configuration loaded from environment variables.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"LOANOPS_LISTEN_ADDR" envDefault:":8080"`

	// LoansDir is the directory of sample loan JSON files.
	LoansDir string `env:"LOANOPS_LOANS_DIR" envDefault:"data/sample_loans"`

	// OutputDir is where operations report artifacts are written.
	OutputDir string `env:"LOANOPS_OUTPUT_DIR" envDefault:"output"`

	// ArchivePath is the SQLite database recording completed runs.
	ArchivePath string `env:"LOANOPS_ARCHIVE_PATH" envDefault:"loanops.db"`

	// Workers bounds concurrent job execution.
	Workers int `env:"LOANOPS_WORKERS" envDefault:"3"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOANOPS_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables. A .env file in
// the working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to values loaded from the environment.
func (c *Config) Sanitize() {
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
}

// SlogLevel maps the configured log level string to a slog.Level.
// Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a structured JSON logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
