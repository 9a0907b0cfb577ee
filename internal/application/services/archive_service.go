package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/repositories"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

// ArchiveService copies the datasets of a built store into the archive.
type ArchiveService struct {
	repo   repositories.ArchiveRepository
	logger *logging.ChanneledLogger
}

func NewArchiveService(repo repositories.ArchiveRepository, logger *logging.ChanneledLogger) *ArchiveService {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &ArchiveService{repo: repo, logger: logger}
}

// Archive ensures the schema exists, stores the store's snapshot and returns
// the archive's view of it.
func (s *ArchiveService) Archive(ctx context.Context, store *ContentStore) (*repositories.ArchiveSummary, error) {
	start := time.Now()

	if err := s.repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare archive: %w", err)
	}
	if err := s.repo.StoreSnapshot(ctx, store.Snapshot()); err != nil {
		return nil, err
	}

	summary, err := s.repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back snapshot: %w", err)
	}

	s.logger.Content().Info("Snapshot archived",
		"snapshotId", summary.ID,
		"officers", summary.OfficerCount,
		"absconded", summary.AbscondedCount,
		"duration", time.Since(start))
	return summary, nil
}
