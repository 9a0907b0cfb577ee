package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDsSortByCreation(t *testing.T) {
	earlier := NewIDAt(time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC))
	later := NewIDAt(time.Date(2024, time.August, 6, 0, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
	assert.Len(t, NewID(), 26)
}

func TestTimestampRoundTrip(t *testing.T) {
	at := time.Date(2024, time.July, 19, 10, 30, 0, 0, time.UTC)
	got, err := Timestamp(NewIDAt(at))
	require.NoError(t, err)
	assert.True(t, at.Equal(got))

	_, err = Timestamp("not-a-ulid")
	assert.Error(t, err)
}
