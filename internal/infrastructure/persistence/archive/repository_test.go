package archive

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/repositories"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/identity"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence/database"
)

func openArchive(t *testing.T) *Repository {
	t.Helper()
	logger := logging.NewDiscardLogger()
	db, err := database.Open(context.Background(), database.Settings{
		Path: filepath.Join(t.TempDir(), "nested", "archive.db"),
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, database.DriverSQLite, db.Driver)
	require.NoError(t, database.CheckConnection(context.Background(), db, logger))

	repo := NewRepository(db, logger)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, repo.EnsureSchema(context.Background()), "schema creation must be repeatable")
	return repo
}

func snapshotAt(at time.Time) *repositories.Snapshot {
	return &repositories.Snapshot{
		ID:      identity.NewIDAt(at),
		BuiltAt: at,
		Officers: map[locale.Locale][]content.OfficerRecord{
			locale.English: {
				{Name: "Habibur Rahman", Area: "DMP", RankAndZone: "Commissioner", Status: content.StatusAbsconded, Date: "2024-08-06", TableRowID: "off-01"},
				{Name: "Harun or Rashid", Area: "DB", RankAndZone: "Additional Commissioner", Status: content.StatusArrested, Date: "2024-08-28", TableRowID: "off-02"},
			},
			locale.Bengali: {
				{Name: "হাবিবুর রহমান", Area: "ডিএমপি", RankAndZone: "কমিশনার", Status: content.StatusAbsconded, Date: "2024-08-06", TableRowID: "off-01"},
			},
		},
		Absconded: map[locale.Locale][]content.AbscondedRecord{
			locale.English: {
				{OfficerName: "Habibur Rahman", Rank: "Police Commissioner", Date: time.Date(2024, 8, 6, 0, 0, 0, 0, time.UTC), RankTier: content.TierTopRanked},
			},
		},
	}
}

func TestStoreAndReadSnapshot(t *testing.T) {
	repo := openArchive(t)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.True(t, errors.Is(err, ErrNoSnapshots))

	older := snapshotAt(time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC))
	newer := snapshotAt(time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.StoreSnapshot(ctx, newer))
	require.NoError(t, repo.StoreSnapshot(ctx, older))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
	assert.True(t, newer.BuiltAt.Equal(latest.BuiltAt))
	assert.Equal(t, 3, latest.OfficerCount)
	assert.Equal(t, 1, latest.AbscondedCount)

	en, err := repo.OfficersFor(ctx, newer.ID, locale.English)
	require.NoError(t, err)
	assert.Equal(t, newer.Officers[locale.English], en)

	bn, err := repo.OfficersFor(ctx, newer.ID, locale.Bengali)
	require.NoError(t, err)
	assert.Equal(t, newer.Officers[locale.Bengali], bn)
}

func TestStoreSnapshotReplacesSameID(t *testing.T) {
	repo := openArchive(t)
	ctx := context.Background()

	snap := snapshotAt(time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, repo.StoreSnapshot(ctx, snap))

	snap.Officers[locale.English] = snap.Officers[locale.English][:1]
	require.NoError(t, repo.StoreSnapshot(ctx, snap))

	en, err := repo.OfficersFor(ctx, snap.ID, locale.English)
	require.NoError(t, err)
	assert.Len(t, en, 1)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.OfficerCount)
}

func TestTursoTargetTakesPrecedence(t *testing.T) {
	driver, dsn := database.Settings{Path: "local.db", TursoURL: "libsql://desk.turso.io", TursoToken: "tok"}.Target()
	assert.Equal(t, database.DriverLibSQL, driver)
	assert.Equal(t, "libsql://desk.turso.io?authToken=tok", dsn)

	driver, _ = database.Settings{Path: "local.db", TursoURL: "libsql://desk.turso.io"}.Target()
	assert.Equal(t, database.DriverSQLite, driver)
}
