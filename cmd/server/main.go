package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/guivini-ac/pbi-autenticate/internal/server/auth"
	"github.com/guivini-ac/pbi-autenticate/internal/server/handlers"
	"github.com/guivini-ac/pbi-autenticate/internal/server/middleware"
	"github.com/guivini-ac/pbi-autenticate/internal/server/observability"
	"github.com/guivini-ac/pbi-autenticate/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// defaultEmbedURL is the public embed link of the report. Overridable
// with REPORT_EMBED_URL.
const defaultEmbedURL = "https://app.powerbi.com/view?r=eyJrIjoiMDM4OGZmODYtMmM4OC00OTdhLTg4YjctOWE1MzQ4NjljOTZiIiwidCI6IjljOGEzMjFhLTcyNzktNDE5NS1hZjNkLTRjYmViMzY3YjA5ZSJ9&pageName=1ee9f0f6b13337dc9e0b"

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	_ = godotenv.Load()

	// The signing secret has no safe default, absence is fatal
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}

	addr := envOrDefault("ADDR", ":8000")
	dbPath := envOrDefault("DATABASE_PATH", "portal.db")
	embedURL := envOrDefault("REPORT_EMBED_URL", defaultEmbedURL)
	adminUsername := envOrDefault("DEFAULT_ADMIN_USERNAME", "admin")
	adminPassword := envOrDefault("DEFAULT_ADMIN_PASSWORD", "senha123")

	if err := observability.InitSentry(os.Getenv("SENTRY_DSN"), envOrDefault("APP_ENV", "development")); err != nil {
		logger.Warn("failed to init sentry", slog.Any("error", err))
	}
	defer observability.FlushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := auth.JWTConfig{Secret: []byte(secret)}
	authService := auth.NewService(logger, store, store, jwtConfig)

	if err := authService.EnsureDefaultUser(ctx, adminUsername, adminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap default user: %w", err)
	}

	authHandler := handlers.NewAuthHandler(logger, authService)
	healthHandler := handlers.NewHealthHandler(logger)
	reportHandler := handlers.NewReportHandler(logger, embedURL)

	requireAuth := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.Handle("GET /api/report", requireAuth(http.HandlerFunc(reportHandler.Report)))

	handler := middleware.RecoveryMiddleware(logger)(middleware.LoggingMiddleware(logger)(mux))

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Portal Power BI Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
