// Package database opens the archive connection, choosing between a local
// sqlite3 file and a remote libsql (Turso) database.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

const (
	DriverSQLite = "sqlite3"
	DriverLibSQL = "libsql"
)

// Settings selects and tunes the archive connection. A non-empty TursoURL
// and TursoToken take precedence over Path.
type Settings struct {
	Path         string
	TursoURL     string
	TursoToken   string
	MaxOpenConns int
	MaxIdleConns int
}

// DB represents a wrapper around the standard SQL database connection.
type DB struct {
	*sql.DB
	Driver string
}

// Target returns the driver and data source name for s.
func (s Settings) Target() (driver, dsn string) {
	if s.TursoURL != "" && s.TursoToken != "" {
		return DriverLibSQL, TursoDSN(s.TursoURL, s.TursoToken)
	}
	return DriverSQLite, s.Path + "?_foreign_keys=on&_journal_mode=WAL"
}

// Open establishes the archive connection described by s and pings it.
func Open(ctx context.Context, s Settings, logger *logging.ChanneledLogger) (*DB, error) {
	driver, dsn := s.Target()
	if driver == DriverSQLite && s.Path != ":memory:" {
		if dir := filepath.Dir(s.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create archive directory: %w", err)
			}
		}
	}
	return NewConnectionWithLogger(ctx, driver, dsn, s, logger)
}

// NewConnectionWithLogger opens and pings a connection for the given driver.
func NewConnectionWithLogger(ctx context.Context, driverName, dataSourceName string, s Settings, logger *logging.ChanneledLogger) (*DB, error) {
	start := time.Now()
	logger.Database().Debug("Creating new database connection", "driverName", driverName)

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		logger.Database().Error("Failed to open database connection", "error", err.Error(), "driverName", driverName)
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}
	if s.MaxOpenConns > 0 {
		db.SetMaxOpenConns(s.MaxOpenConns)
	}
	if s.MaxIdleConns > 0 {
		db.SetMaxIdleConns(s.MaxIdleConns)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		logger.Database().Error("Database ping failed", "error", err.Error(), "driverName", driverName)
		return nil, fmt.Errorf("failed to reach %s database: %w", driverName, err)
	}

	duration := time.Since(start)
	logger.Database().Info("Database connection established", "driverName", driverName, "duration", duration)
	CheckAndLogSlowQuery(logger, "DATABASE_CONNECTION", duration)

	return &DB{DB: db, Driver: driverName}, nil
}
