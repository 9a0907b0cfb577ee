// Package startup prepares the application server
package startup

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailystar-data/police-story-go/internal/application/container"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/presentation/http/routes"
	"github.com/dailystar-data/police-story-go/internal/presentation/http/server"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

// Initialize performs the complete startup sequence and serves until ctx is
// cancelled or the process receives SIGINT or SIGTERM.
func Initialize(ctx context.Context) error {
	setupLogging()

	start := time.Now().UTC()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Initializing police story content service...")

	// Step 1: Logger
	logger, err := container.NewLoggerFromConfig()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()
	logger.Startup().Info("Channeled logging initialized", "level", config.LogLevel, "json", config.LogJSON)

	// Step 2: Default locale
	defaultLocale, err := locale.Parse(config.DefaultLocale)
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_LOCALE: %w", err)
	}

	// Step 3: Build content store and services
	phaseStart := time.Now()
	appContainer, err := container.NewFromConfig(logger)
	logger.LogStartupPhase("content_store", time.Since(phaseStart), err == nil, map[string]any{
		"datasetDir": config.DatasetDir,
	})
	if err != nil {
		return err
	}

	report := appContainer.Store.Report()
	logger.Startup().Info("Integrity report ready",
		"reportId", report.ID,
		"errors", len(report.Errors()),
		"warnings", len(report.Warnings()))

	// Step 4: HTTP server
	httpServer := server.New(server.Settings{
		Port:         config.Port,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}, routes.Options{
		BasePath:           config.BasePath,
		CORSAllowedOrigins: config.CORSAllowedOrigins,
		DefaultLocale:      defaultLocale,
	}, appContainer)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"snapshotId", appContainer.Store.SnapshotID(),
		"port", config.Port)

	// Step 5: Wait for shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	shutdownStart := time.Now()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	if err := <-serveErr; err != nil {
		logger.Shutdown().Error("HTTP server exited with error", "error", err.Error())
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))
	return nil
}

// setupLogging configures application logging
func setupLogging() {
	if config.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
