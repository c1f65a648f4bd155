package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"questfs/internal/server/api"
	"questfs/internal/server/challenge"
	"questfs/internal/server/config"
	"questfs/internal/server/session"
)

func main() {
	// Structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load config
	cfg := config.Load()
	slog.Info("configuration loaded",
		"port", cfg.Port,
		"session_ttl", cfg.SessionTTL,
		"max_sessions", cfg.MaxSessions,
		"challenges_path", cfg.ChallengesPath,
	)

	// Build the challenge registry: the built-in challenge plus anything
	// found in the challenge directory.
	registry := challenge.NewRegistry()
	if err := registry.Register(challenge.Default()); err != nil {
		slog.Error("failed to register default challenge", "error", err)
		os.Exit(1)
	}
	if cfg.ChallengesPath != "" {
		loaded, err := challenge.LoadDir(cfg.ChallengesPath)
		if err != nil {
			slog.Error("failed to load challenges", "path", cfg.ChallengesPath, "error", err)
			os.Exit(1)
		}
		for _, ch := range loaded {
			if err := registry.Register(ch); err != nil {
				slog.Error("failed to register challenge", "id", ch.ID, "error", err)
				os.Exit(1)
			}
		}
		slog.Info("challenges loaded", "path", cfg.ChallengesPath, "count", len(loaded))
	}

	// Session manager and expiry reaper
	manager := session.NewManager(cfg.SessionTTL, cfg.MaxSessions)
	reaperCtx, reaperCancel := context.WithCancel(context.Background())
	reaper := session.NewReaper(manager, cfg.CleanupInterval)
	reaper.Start(reaperCtx)

	// Setup HTTP router
	handler := api.NewHandler(manager, registry)
	e := api.SetupRouter(handler, cfg)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		slog.Info("starting server", "addr", addr, "base_url", cfg.BaseURL)
		if err := e.Start(addr); err != nil {
			slog.Info("server stopped", "reason", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutting down", "signal", sig)

	// Stop accepting new requests, finish in-flight with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Stop the session reaper
	reaperCancel()
	reaper.Wait()

	slog.Info("server exited cleanly")
}
