// Package archive stores content store snapshots in SQL for the data desk.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/repositories"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/database"
)

const dateLayout = "2006-01-02"

// ErrNoSnapshots is returned by Latest on an empty archive.
var ErrNoSnapshots = errors.New("archive has no snapshots")

// Repository implements repositories.ArchiveRepository.
type Repository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

var _ repositories.ArchiveRepository = (*Repository)(nil)

func NewRepository(db *database.DB, logger *logging.ChanneledLogger) *Repository {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	start := time.Now()
	if err := database.NewTableCreator().CreateSchema(ctx, r.db); err != nil {
		return err
	}
	database.CheckAndLogSlowQuery(r.logger, "SCHEMA_CREATE", time.Since(start))
	return nil
}

// StoreSnapshot writes s in a single transaction. Writing a snapshot ID that
// already exists replaces it.
func (r *Repository) StoreSnapshot(ctx context.Context, s *repositories.Snapshot) (err error) {
	start := time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Database().Error("Snapshot rollback failed", "snapshotId", s.ID, "error", rbErr.Error())
			}
		}
	}()

	officerCount, abscondedCount := 0, 0
	for _, l := range locale.All() {
		officerCount += len(s.Officers[l])
		abscondedCount += len(s.Absconded[l])
	}

	for _, q := range []string{
		`DELETE FROM officers WHERE snapshot_id = ?`,
		`DELETE FROM absconded WHERE snapshot_id = ?`,
		`DELETE FROM snapshots WHERE id = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, s.ID); err != nil {
			return fmt.Errorf("failed to clear snapshot %s: %w", s.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO snapshots (id, built_at, officer_count, absconded_count) VALUES (?, ?, ?, ?)`,
		s.ID, s.BuiltAt.UTC().Format(time.RFC3339Nano), officerCount, abscondedCount); err != nil {
		return fmt.Errorf("failed to insert snapshot %s: %w", s.ID, err)
	}

	officerStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO officers (snapshot_id, locale, position, table_row_id, name, area, rank_and_zone, status, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare officer insert: %w", err)
	}
	defer officerStmt.Close()

	abscondedStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO absconded (snapshot_id, locale, position, officer_name, rank, date, rank_tier) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare absconded insert: %w", err)
	}
	defer abscondedStmt.Close()

	for _, l := range locale.All() {
		for i, rec := range s.Officers[l] {
			if _, err = officerStmt.ExecContext(ctx, s.ID, string(l), i, rec.TableRowID, rec.Name, rec.Area, rec.RankAndZone, string(rec.Status), rec.Date); err != nil {
				return fmt.Errorf("failed to insert %s officer %d: %w", l, i, err)
			}
		}
		for i, rec := range s.Absconded[l] {
			if _, err = abscondedStmt.ExecContext(ctx, s.ID, string(l), i, rec.OfficerName, rec.Rank, rec.Date.Format(dateLayout), string(rec.RankTier)); err != nil {
				return fmt.Errorf("failed to insert %s absconded record %d: %w", l, i, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot %s: %w", s.ID, err)
	}

	duration := time.Since(start)
	r.logger.Database().Info("Snapshot archived",
		"snapshotId", s.ID,
		"officers", officerCount,
		"absconded", abscondedCount,
		"driverName", r.db.Driver,
		"duration", duration)
	database.CheckAndLogSlowQuery(r.logger, "SNAPSHOT_STORE", duration)
	return nil
}

// Latest returns the most recently built snapshot.
func (r *Repository) Latest(ctx context.Context) (*repositories.ArchiveSummary, error) {
	start := time.Now()
	query := `SELECT id, built_at, officer_count, absconded_count FROM snapshots ORDER BY built_at DESC, id DESC LIMIT 1`

	var (
		summary repositories.ArchiveSummary
		builtAt string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(&summary.ID, &builtAt, &summary.OfficerCount, &summary.AbscondedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshots
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read latest snapshot: %w", err)
	}
	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))

	summary.BuiltAt, err = time.Parse(time.RFC3339Nano, builtAt)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s has invalid built_at %q: %w", summary.ID, builtAt, err)
	}
	return &summary, nil
}

// OfficersFor returns a snapshot's officer rows for one locale in dataset
// order.
func (r *Repository) OfficersFor(ctx context.Context, snapshotID string, l locale.Locale) ([]content.OfficerRecord, error) {
	start := time.Now()
	query := `SELECT table_row_id, name, area, rank_and_zone, status, date FROM officers WHERE snapshot_id = ? AND locale = ? ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, snapshotID, string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to query officers: %w", err)
	}
	defer rows.Close()

	var out []content.OfficerRecord
	for rows.Next() {
		var (
			rec    content.OfficerRecord
			status string
		)
		if err := rows.Scan(&rec.TableRowID, &rec.Name, &rec.Area, &rec.RankAndZone, &status, &rec.Date); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		rec.Status = content.OfficerStatus(status)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read officers: %w", err)
	}

	database.CheckAndLogSlowQuery(r.logger, query, time.Since(start))
	return out, nil
}
