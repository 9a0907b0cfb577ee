// Package identity mints sortable identifiers for snapshots and reports.
package identity

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewID returns a new ULID string.
func NewID() string {
	return ulid.Make().String()
}

// NewIDAt returns a ULID whose timestamp component is t.
func NewIDAt(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// Timestamp recovers the creation time encoded in id.
func Timestamp(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return ulid.Time(parsed.Time()).UTC(), nil
}
