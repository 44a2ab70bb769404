// @title         ats-matcher API
// @version       1.0
// @description   Compares a resume against a job description with an LLM and reports an ATS-style match score.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/artem13815/atsmatch/docs"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/artem13815/atsmatch/api/http"
	"github.com/artem13815/atsmatch/api/http/handlers"
	"github.com/artem13815/atsmatch/pkg/analysis"
	"github.com/artem13815/atsmatch/pkg/config"
	"github.com/artem13815/atsmatch/pkg/health"
	"github.com/artem13815/atsmatch/pkg/health/checkers"
	"github.com/artem13815/atsmatch/pkg/llm"
	"github.com/artem13815/atsmatch/pkg/llm/gemini"
	"github.com/artem13815/atsmatch/pkg/llm/openrouter"
	"github.com/artem13815/atsmatch/pkg/resume"
	"github.com/artem13815/atsmatch/pkg/storage"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, apiKey := newChatModel(ctx, cfg, logger)
	if c, ok := model.(io.Closer); ok {
		defer c.Close()
	}

	store, storeChecker, err := newFileStore(ctx, cfg)
	if err != nil {
		logger.Error("init upload store", slog.Any("error", err))
		os.Exit(1)
	}

	// Wire dependencies
	analysisUC := analysis.NewService(llm.NewResilient(model, logger), analysis.Options{
		Parallel: cfg.AnalysisParallel,
		Logger:   logger,
	})
	analyzeHandler := handlers.NewAnalyzeHandler(analysisUC, store, resume.NewParser(logger), handlers.AnalyzeOptions{
		MaxBytes: int64(cfg.MaxUploadMB) << 20,
		Retain:   cfg.UploadRetain,
		Logger:   logger,
	})

	// Health service: compose checkers
	readiness := health.NewService(storeChecker, checkers.NewModelChecker(cfg.LLMProvider, apiKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	app := http.NewApp(http.AppOptions{
		// Leave room for the multipart envelope and the job description.
		BodyLimit:   (cfg.MaxUploadMB + 1) << 20,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
	})
	http.Register(app, analyzeHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", slog.String("port", cfg.Port), slog.String("provider", cfg.LLMProvider))
		serverErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}
}

// newChatModel builds the configured provider client. A client that cannot be
// built is replaced by one that fails every call, so requests still complete
// with the error rendered in place of each generated text.
func newChatModel(ctx context.Context, cfg config.Config, logger *slog.Logger) (llm.ChatModel, string) {
	switch cfg.LLMProvider {
	case config.ProviderOpenRouter:
		client := openrouter.New(openrouter.Config{
			APIKey:   cfg.OpenRouterAPIKey,
			BaseURL:  cfg.OpenRouterBase,
			Model:    cfg.OpenRouterModel,
			AppTitle: cfg.OpenRouterAppTitle,
			Referer:  cfg.OpenRouterReferer,
		})
		return client, cfg.OpenRouterAPIKey
	case config.ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Warn("gemini client unavailable", slog.Any("error", err))
			return llm.Unavailable{Err: err}, cfg.GeminiAPIKey
		}
		return client, cfg.GeminiAPIKey
	default:
		err := fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
		logger.Warn("model unavailable", slog.Any("error", err))
		return llm.Unavailable{Err: err}, ""
	}
}

func newFileStore(ctx context.Context, cfg config.Config) (storage.FileStore, health.Checker, error) {
	switch cfg.UploadBackend {
	case config.UploadBackendLocal:
		store, err := storage.NewLocalStore(cfg.UploadDir)
		if err != nil {
			return nil, nil, err
		}
		return store, checkers.NewUploadDirChecker(store.Dir()), nil
	case config.UploadBackendS3:
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			EndpointURL: cfg.S3EndpointURL,
			Region:      cfg.S3Region,
			AccessKey:   cfg.S3AccessKey,
			SecretKey:   cfg.S3SecretKey,
			Bucket:      cfg.S3Bucket,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, checkers.NewBucketChecker(store), nil
	default:
		return nil, nil, errors.New("UPLOAD_BACKEND must be local or s3")
	}
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
