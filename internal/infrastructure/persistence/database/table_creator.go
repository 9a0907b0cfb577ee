package database

import (
	"context"
	"fmt"
)

// TableCreator builds the archive schema.
type TableCreator struct{}

func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

// CreateSchema creates every archive table and index. It is safe to run on
// an existing archive.
func (tc *TableCreator) CreateSchema(ctx context.Context, db *DB) error {
	for _, tableSQL := range tables {
		if _, err := db.ExecContext(ctx, tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}
	for _, indexSQL := range indexes {
		if _, err := db.ExecContext(ctx, indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
  id TEXT PRIMARY KEY,
  built_at TEXT NOT NULL,
  officer_count INTEGER NOT NULL DEFAULT 0,
  absconded_count INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS officers (
  snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
  locale TEXT NOT NULL,
  position INTEGER NOT NULL,
  table_row_id TEXT NOT NULL,
  name TEXT NOT NULL,
  area TEXT NOT NULL,
  rank_and_zone TEXT NOT NULL,
  status TEXT NOT NULL,
  date TEXT NOT NULL,
  PRIMARY KEY (snapshot_id, locale, position)
)`,
	`CREATE TABLE IF NOT EXISTS absconded (
  snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
  locale TEXT NOT NULL,
  position INTEGER NOT NULL,
  officer_name TEXT NOT NULL,
  rank TEXT NOT NULL,
  date TEXT NOT NULL,
  rank_tier TEXT NOT NULL,
  PRIMARY KEY (snapshot_id, locale, position)
)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_snapshots_built_at ON snapshots(built_at)`,
	`CREATE INDEX IF NOT EXISTS idx_officers_status ON officers(snapshot_id, locale, status)`,
	`CREATE INDEX IF NOT EXISTS idx_absconded_tier ON absconded(snapshot_id, locale, rank_tier)`,
}
