package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelkart/internal/catalog"
	"travelkart/internal/config"
	"travelkart/internal/generator"
	"travelkart/internal/handler"
	"travelkart/internal/repository"
	"travelkart/internal/router"
	"travelkart/internal/service"
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
	logger.Info().Msg("starting travelkart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize theme catalog loader with S3 and local fallback
	var catalogLoader catalog.Loader
	catalogPath := cfg.Catalog.File

	if cfg.Catalog.S3.Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.Catalog.S3.Bucket, cfg.Catalog.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 catalog loader, falling back to local file system")
			catalogLoader = catalog.NewFileLoader(logger)
		} else {
			catalogLoader = s3Loader
			catalogPath = cfg.Catalog.S3.Key
		}
	} else {
		catalogLoader = catalog.NewFileLoader(logger)
	}

	themes, err := catalogLoader.Load(ctx, catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load theme catalog: %w", err)
	}
	themeCatalog := catalog.NewCatalog(themes)
	logger.Info().Int("themes", len(themes)).Msg("theme catalog ready")

	// Initialize the bundle generator. Without an API key sessions always
	// use the fallback bundle.
	var gen generator.Generator
	if cfg.Gemini.APIKey == "" {
		logger.Warn().Msg("no Gemini API key configured, dynamic bundles use the fallback only")
		gen = generator.NewDisabled()
	} else {
		gen, err = generator.NewGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize bundle generator: %w", err)
		}
	}
	defer gen.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(logger)
	bookingRepo := repository.NewBookingRepository(logger)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, bookingRepo, themeCatalog, gen, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)

	// Initialize HTTP handlers
	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	themeHandler := handler.NewThemeHandler(themeCatalog, logger)
	bookingHandler := handler.NewBookingHandler(bookingService, logger)

	// Initialize router
	mux := router.New(sessionHandler, themeHandler, bookingHandler, cfg.Auth.APIKey, logger)

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
