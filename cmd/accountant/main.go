package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KrisKind75/ai-accounting-app/internal/assistant"
	"github.com/KrisKind75/ai-accounting-app/internal/classify"
	"github.com/KrisKind75/ai-accounting-app/internal/cli"
	"github.com/KrisKind75/ai-accounting-app/internal/events"
	apphttp "github.com/KrisKind75/ai-accounting-app/internal/http"
	"github.com/KrisKind75/ai-accounting-app/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if cfg.LogLevel != slog.LevelInfo {
		logger = cli.SetupLogger(cfg.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ledger storage. Missing configuration degrades to an empty read-only
	// ledger instead of failing startup.
	var ledger assistant.Ledger
	if cfg.StorageConfigured() {
		sqlLedger, err := storage.NewSQLiteLedger(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize ledger storage", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer sqlLedger.Close()
		ledger = sqlLedger
		logger.Info("Initialized SQLite ledger", "path", cfg.SQLiteDBPath)
	} else {
		ledger = storage.DisabledLedger{}
		logger.Warn("No SQLITE_DB_PATH configured, running without database features")
	}

	// Model classifier. Absence of credentials means keyword-only operation.
	var model assistant.IntentClassifier
	if cfg.AIConfigured() {
		mc, err := classify.NewModelClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("Failed to initialize model classifier, AI disabled", "error", err)
		} else {
			model = mc
			logger.Info("Initialized model classifier", "model", cfg.GeminiModel)
		}
	} else {
		logger.Warn("No GEMINI_API_KEY found, AI disabled")
	}

	// Ledger event publishing is optional.
	var publisher assistant.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize event publisher, continuing without events", "error", err)
		} else {
			defer p.Close()
			publisher = p
			logger.Info("Initialized event publisher",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	bot := assistant.New(ledger, model, publisher)
	srv := apphttp.NewServer(":"+cfg.Port, bot)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting accountant server", "port", cfg.Port,
			"storage", cfg.StorageConfigured(), "ai", model != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped gracefully")
}
