package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/healthnews/curator/internal/app"
	"github.com/healthnews/curator/internal/config"
	"github.com/healthnews/curator/internal/logging"
)

func main() {
	// A missing .env is fine; the enrichment credential can also come
	// from the real environment.
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := app.New(ctx, cfg)
	logger := application.Logger
	defer logger.Sync()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := application.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", logging.WithField("error", err.Error()))
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server error", logging.WithField("error", err.Error()))
		os.Exit(1)
	}
}
