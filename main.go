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

	"whatif-server/internal"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger until LOG_LEVEL is known
	internal.InitLogger(os.Stdout, slog.LevelInfo)

	// Load environment variables from .env file
	internal.LoadEnvFile()

	cfg, err := internal.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	internal.InitLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without a key the generator stays in mock mode
	var model internal.TextModel
	if cfg.HasAPIKey() {
		gemini, err := internal.NewGeminiModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			slog.Warn("Gemini unavailable, serving mock content", slog.String("error", err.Error()))
		} else {
			defer gemini.Close()
			model = gemini
		}
	} else {
		slog.Info("No GEMINI_API_KEY found, serving mock content")
	}

	generator := internal.NewGenerator(model, cfg.GenerationTimeout)
	router := internal.NewServer(generator, cfg).SetupRouter()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		slog.Info("What If server starting", slog.String("addr", srv.Addr), slog.Bool("mock_mode", generator.MockMode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		slog.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
