// Package cli holds the startup plumbing shared by the binaries: logging,
// .env loading, and config validation.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/KrisKind75/ai-accounting-app/internal/config"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the process default.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it. Exits the
// process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}
