// Package persistence combines the authored and dataset repositories into the
// single source the content store is built from.
package persistence

import (
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/authored"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/dataset"
)

// Source satisfies repositories.ContentSource.
type Source struct {
	*authored.Repository
	*dataset.Loader
}

// NewSource reads authored content from the embedded documents and datasets
// from datasetDir, or the embedded copies when datasetDir is empty.
func NewSource(datasetDir, mapAccessToken string, logger *logging.ChanneledLogger) *Source {
	return &Source{
		Repository: authored.NewEmbeddedRepository(mapAccessToken, logger),
		Loader:     dataset.NewDirLoader(datasetDir, logger),
	}
}
