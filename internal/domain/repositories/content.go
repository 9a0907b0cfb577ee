// Package repositories defines the read boundaries the content store is
// assembled from and the archive it is written to. Implementations live under
// infrastructure/persistence.
package repositories

import (
	"context"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

// AuthoredRepository yields the hand-written part of a locale tree: article
// blocks and every auxiliary bag except the datasets.
type AuthoredRepository interface {
	Load(l locale.Locale) (*content.LocaleContent, error)
}

// DatasetRepository yields the imported officer and absconded datasets.
type DatasetRepository interface {
	Officers(l locale.Locale) ([]content.OfficerRecord, error)
	Absconded(l locale.Locale, rankMap map[string]string) ([]content.AbscondedRecord, error)
}

// ContentSource bundles what the content store needs to build a snapshot.
type ContentSource interface {
	AuthoredRepository
	DatasetRepository
}

// Snapshot is one archived build of both locale trees.
type Snapshot struct {
	ID        string
	BuiltAt   time.Time
	Officers  map[locale.Locale][]content.OfficerRecord
	Absconded map[locale.Locale][]content.AbscondedRecord
}

// ArchiveSummary describes a stored snapshot.
type ArchiveSummary struct {
	ID             string
	BuiltAt        time.Time
	OfficerCount   int
	AbscondedCount int
}

type ArchiveRepository interface {
	EnsureSchema(ctx context.Context) error
	StoreSnapshot(ctx context.Context, s *Snapshot) error
	Latest(ctx context.Context) (*ArchiveSummary, error)
	OfficersFor(ctx context.Context, snapshotID string, l locale.Locale) ([]content.OfficerRecord, error)
}
