package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nkulisa-npc/membership-site/internal/bootstrap"
	"github.com/nkulisa-npc/membership-site/internal/config"
	"github.com/nkulisa-npc/membership-site/internal/mailer"
	"github.com/nkulisa-npc/membership-site/internal/mirror"
	"github.com/nkulisa-npc/membership-site/internal/router"
	"github.com/nkulisa-npc/membership-site/internal/shared/database"
	"github.com/nkulisa-npc/membership-site/internal/shared/logger"
	"github.com/nkulisa-npc/membership-site/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("Server initialization started", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("Server initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Configuration loaded")

	// Connect to the member store
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	// Initialize the mirror-store session once for the process lifetime.
	// Missing configuration leaves it disabled; startup never fails on it.
	mirrorStore := mirror.Connect(ctx, cfg)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := mirrorStore.Close(closeCtx); err != nil {
			slog.Error("Failed to close mirror store", "error", err)
		}
	}()

	// Outbound mail relay
	mail := mailer.NewSMTP(cfg.Mail)

	// Setup server
	srv := setupServer(cfg, db, mirrorStore, mail)

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB, mirrorStore *mirror.Client, mail mailer.Mailer) *bootstrap.Server {
	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		slog.Error("Failed to register common validators", "error", err)
		panic(err)
	}

	// Setup application-specific routes
	router.Setup(ginEngine, cfg, db, mirrorStore, mail)

	slog.Info("Server setup complete",
		"env", cfg.App.Env,
		"mirror_store", mirrorStore.State().String(),
		"mail_enabled", cfg.Mail.Enabled(),
	)

	return bootstrap.New(cfg, ginEngine)
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		// Received shutdown signal
		slog.Info("Shutdown signal received", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		// Attempt graceful shutdown
		slog.Info("Shutting down server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced server shutdown: %w", err)
		}
		return nil
	}
}
