package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/pkg/config"
)

// TursoDSN builds the libsql connection string.
func TursoDSN(databaseURL, authToken string) string {
	return fmt.Sprintf("%s?authToken=%s", databaseURL, authToken)
}

// CheckConnection runs a trivial query against db.
func CheckConnection(ctx context.Context, db *DB, logger *logging.ChanneledLogger) error {
	start := time.Now()

	var result int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		logger.Database().Error("Connection test query failed", "error", err.Error(), "driverName", db.Driver)
		return fmt.Errorf("connection test query failed: %w", err)
	}
	if result != 1 {
		logger.Database().Error("Unexpected query result", "result", result, "expected", 1, "driverName", db.Driver)
		return fmt.Errorf("unexpected query result: %d", result)
	}

	logger.Database().Debug("Connection test successful", "driverName", db.Driver, "duration", time.Since(start))
	return nil
}

// GetSlowQueryThreshold returns the configured slow query threshold.
func GetSlowQueryThreshold() time.Duration {
	return config.SlowQueryThreshold
}

// CheckAndLogSlowQuery logs query on the slow query channel when duration
// exceeds the threshold. Snapshot writes get three times the budget.
func CheckAndLogSlowQuery(logger *logging.ChanneledLogger, query string, duration time.Duration) {
	threshold := GetSlowQueryThreshold()
	if strings.HasPrefix(query, "SNAPSHOT_") {
		threshold *= 3
	}
	if duration > threshold {
		logger.LogSlowQuery(query, duration)
	}
}
