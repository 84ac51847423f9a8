package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"digital-menu/internal/cart"
	"digital-menu/internal/config"
	"digital-menu/internal/database"
	"digital-menu/internal/handler"
	"digital-menu/internal/metrics"
	"digital-menu/internal/repository"
	"digital-menu/internal/router"
	"digital-menu/internal/service"
	"digital-menu/internal/settings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting digital-menu API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	galleryRepo := repository.NewGalleryRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)

	// Open the local cart snapshot store
	cartStore, err := cart.NewPebbleStore(cfg.Cart.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open cart store: %w", err)
	}
	defer cartStore.Close()

	// Start the live settings feed
	feed := settings.NewFeed(settingsRepo, logger)
	if err := feed.Start(ctx, cfg.Settings.RefreshInterval); err != nil {
		return fmt.Errorf("failed to start settings feed: %w", err)
	}
	defer feed.Close()

	// Initialize metrics
	reg := metrics.NewRegistry()

	// Initialize services
	menuService := service.NewMenuService(menuRepo, categoryRepo, logger)
	cartService := service.NewCartService(menuRepo, cartStore, reg, logger)
	orderService := service.NewOrderService(cartService, feed, reg, nil, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, feed, logger)
	cartHandler := handler.NewCartHandler(cartService, orderService, logger)
	adminHandler := handler.NewAdminHandler(menuService, galleryRepo, feed, logger)

	// Initialize router
	mux := router.New(menuHandler, cartHandler, adminHandler, reg, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
