// ABOUTME: Entry point for the RIMKI backend service
// ABOUTME: Wires config, store, services, and routes; serves until signaled

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/rimki/rimki/cache"
	"github.com/rimki/rimki/config"
	"github.com/rimki/rimki/handlers"
	"github.com/rimki/rimki/logger"
	"github.com/rimki/rimki/middleware"
	"github.com/rimki/rimki/services"
	"github.com/rimki/rimki/store"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting RIMKI backend")
	if cfg.JWTSecret == "secret" {
		slog.Warn("JWT_SECRET is using the default value, tokens are forgeable")
	}
	if cfg.DemoMode {
		slog.Warn("Demo mode enabled: the demo password is accepted for any account")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := store.Seed(ctx, st, cfg.SeedUsername, cfg.SeedPassword, cfg.SeedEmail); err != nil {
		slog.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		slog.Error("Failed to create upload directory", "error", err, "dir", cfg.UploadDir)
		os.Exit(1)
	}

	tokens := services.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	auth := services.NewAuthService(st.Users(), tokens, cfg.DemoFallbackPassword())
	chat := services.NewChatService(cfg.AnthropicAPIKey, cfg.ChatModel)
	if cfg.ChatConfigured() {
		slog.Info("Chat assistant configured", "model", cfg.ChatModel)
	} else {
		slog.Info("Chat assistant running in stub mode")
	}
	if cfg.QuizAPIConfigured() {
		slog.Info("Quiz builder API configured", "url", cfg.QuizAPIUrl)
	}

	c := cache.New(time.Duration(cfg.CacheTTL) * time.Second)
	h := handlers.NewHandler(cfg, c, st, auth, chat)

	var loginLimiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		loginLimiter = middleware.NewRateLimiter(cfg.RateLimitLogin, time.Minute)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h, tokens, loginLimiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DBPath == "" {
		slog.Info("Using in-memory store")
		return store.NewMemoryStore(), nil
	}
	slog.Info("Using sqlite store", "path", cfg.DBPath)
	return store.NewSQLiteStore(cfg.DBPath)
}
