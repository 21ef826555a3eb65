package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "data/sample_loans", cfg.LoansDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "loanops.db", cfg.ArchivePath)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOANOPS_LISTEN_ADDR", ":9090")
	t.Setenv("LOANOPS_LOANS_DIR", "/srv/loans")
	t.Setenv("LOANOPS_WORKERS", "8")
	t.Setenv("LOANOPS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/srv/loans", cfg.LoansDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestSanitizeWorkers(t *testing.T) {
	cfg := Config{Workers: 0}
	cfg.Sanitize()
	assert.Equal(t, defaultWorkers, cfg.Workers)

	cfg = Config{Workers: -2}
	cfg.Sanitize()
	assert.Equal(t, defaultWorkers, cfg.Workers)

	cfg = Config{Workers: 5}
	cfg.Sanitize()
	assert.Equal(t, 5, cfg.Workers)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.in)
	}
}
