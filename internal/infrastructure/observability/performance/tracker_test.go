package performance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerRecordsOnComplete(t *testing.T) {
	tracker := NewTracker(nil)
	assert.Equal(t, HealthUnknown, tracker.Health())

	m := tracker.StartOperation("store:build", "")
	m.AddMetadata("locales", 2)
	m.SetSuccess(true)
	m.Complete()
	m.Complete()

	recent := tracker.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "store:build", recent[0].Operation)
	assert.Equal(t, 2, recent[0].Metadata["locales"])
	assert.True(t, recent[0].Completed)
	assert.Equal(t, HealthHealthy, tracker.Health())
}

func TestTrackerRingKeepsNewest(t *testing.T) {
	tracker := NewTracker(&TrackerConfig{MaxMarkers: 3})
	for _, op := range []string{"a", "b", "c", "d", "e"} {
		m := tracker.StartOperation(op, "en")
		m.SetSuccess(true)
		m.Complete()
	}

	recent := tracker.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "c", recent[0].Operation)
	assert.Equal(t, "e", recent[2].Operation)
}

func TestFailuresDegradeHealth(t *testing.T) {
	tracker := NewTracker(nil)
	for i := 0; i < 20; i++ {
		m := tracker.StartOperation("api:content", "bn")
		m.SetSuccess(true)
		m.Complete()
	}
	m := tracker.StartOperation("api:content", "fr")
	m.SetError(errors.New("unknown locale"))
	m.Complete()

	assert.Equal(t, HealthDegraded, tracker.Health())
	assert.Equal(t, 21, tracker.Stats()["operations"])
}
