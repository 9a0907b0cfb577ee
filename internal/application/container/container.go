// Package container provides dependency injection for all singleton services
package container

import (
	"fmt"
	"log/slog"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/repositories"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/caching"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/performance"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence"
	"github.com/dailystar-data/police-story-go/internal/presentation/templates"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content (read-only after construction)
	Store          *services.ContentStore
	ArticleService *services.ArticleService
	Renderer       *templates.ArticleRenderer

	// Infrastructure Dependencies
	FragmentCache *caching.FragmentsStore
	Logger        *logging.ChanneledLogger
	PerfTracker   *performance.Tracker
}

// NewContainer builds the content store and wires the services around it.
// A store that fails to build aborts construction.
func NewContainer(source repositories.ContentSource, logger *logging.ChanneledLogger, tracker *performance.Tracker) (*Container, error) {
	marker := tracker.StartOperation("store:build", "")
	defer marker.Complete()

	store, err := services.NewContentStore(source, logger)
	if err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to build content store: %w", err)
	}
	marker.SetSuccess(true)
	marker.AddMetadata("snapshotId", store.SnapshotID())

	return &Container{
		Store:          store,
		ArticleService: services.NewArticleService(store),
		Renderer:       templates.NewArticleRenderer(config.BasePath, logger),
		FragmentCache:  caching.NewFragmentsStore(config.FragmentCacheTTL),
		Logger:         logger,
		PerfTracker:    tracker,
	}, nil
}

// NewLoggerFromConfig builds the channeled logger from pkg/config.
func NewLoggerFromConfig() (*logging.ChanneledLogger, error) {
	cfg := logging.DefaultLoggerConfig()
	cfg.JSONFormat = config.LogJSON
	cfg.OutputToFile = config.LogToFile
	cfg.LogDirectory = config.LogDirectory
	if level, ok := logging.ParseLevel(config.LogLevel); ok {
		cfg.DefaultLevel = level
		cfg.IncludeSource = level <= slog.LevelDebug
	}
	return logging.NewChanneledLogger(cfg)
}

// NewFromConfig wires a container from pkg/config.
func NewFromConfig(logger *logging.ChanneledLogger) (*Container, error) {
	tracker := performance.NewTracker(&performance.TrackerConfig{
		MaxMarkers:    performance.DefaultTrackerConfig().MaxMarkers,
		SlowThreshold: config.SlowQueryThreshold,
	})
	source := persistence.NewSource(config.DatasetDir, config.MapAccessToken, logger)
	return NewContainer(source, logger, tracker)
}
