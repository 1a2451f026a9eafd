package cli

import (
	"context"
	"log/slog"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	logger := SetupLogger(slog.LevelDebug)
	if logger == nil {
		t.Fatal("SetupLogger returned nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}
	if slog.Default().Handler() != logger.Handler() {
		t.Error("SetupLogger should install the default logger")
	}
}

func TestLoadAndValidateConfig(t *testing.T) {
	t.Setenv("PORT", "9091")
	t.Setenv("AMQP_URL", "")

	cfg := LoadAndValidateConfig(SetupLogger(slog.LevelInfo))
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.Port != "9091" {
		t.Errorf("port: got %s", cfg.Port)
	}
}
