package performance

import (
	"sync"
	"time"
)

// Tracker keeps a bounded ring of completed markers.
type Tracker struct {
	completed []Marker
	next      int
	full      bool
	slow      time.Duration
	started   time.Time
	mu        sync.RWMutex
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers    int           `json:"maxMarkers"`    // Maximum number of completed markers to retain
	SlowThreshold time.Duration `json:"slowThreshold"` // Markers slower than this degrade health
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:    1000,
		SlowThreshold: 500 * time.Millisecond,
	}
}

// NewTracker creates a tracker; a nil config uses the defaults.
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	if config.MaxMarkers <= 0 {
		config.MaxMarkers = DefaultTrackerConfig().MaxMarkers
	}
	return &Tracker{
		completed: make([]Marker, config.MaxMarkers),
		slow:      config.SlowThreshold,
		started:   time.Now(),
	}
}

// StartOperation begins timing an operation. Calling Complete on the marker
// records it with the tracker.
func (t *Tracker) StartOperation(operation, locale string) *Marker {
	return &Marker{
		Operation: operation,
		Locale:    locale,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := *m
	snapshot.tracker = nil
	t.completed[t.next] = snapshot
	t.next = (t.next + 1) % len(t.completed)
	if t.next == 0 {
		t.full = true
	}
}

// Recent returns completed markers, oldest first.
func (t *Tracker) Recent() []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		out := make([]Marker, t.next)
		copy(out, t.completed[:t.next])
		return out
	}
	out := make([]Marker, 0, len(t.completed))
	out = append(out, t.completed[t.next:]...)
	out = append(out, t.completed[:t.next]...)
	return out
}

// Health summarises recent markers: failures make it unhealthy, slow
// operations degrade it.
func (t *Tracker) Health() HealthStatus {
	recent := t.Recent()
	if len(recent) == 0 {
		return HealthUnknown
	}

	failed, slow := 0, 0
	for _, m := range recent {
		if !m.Success {
			failed++
		}
		if t.slow > 0 && m.Duration > t.slow {
			slow++
		}
	}

	switch {
	case failed*10 > len(recent):
		return HealthUnhealthy
	case failed > 0 || slow*5 > len(recent):
		return HealthDegraded
	default:
		return HealthHealthy
	}
}

// Stats returns aggregate counters for the health endpoint.
func (t *Tracker) Stats() map[string]any {
	recent := t.Recent()
	var total time.Duration
	for _, m := range recent {
		total += m.Duration
	}

	avg := time.Duration(0)
	if len(recent) > 0 {
		avg = total / time.Duration(len(recent))
	}

	return map[string]any{
		"uptime":          time.Since(t.started).String(),
		"operations":      len(recent),
		"averageDuration": avg.String(),
		"health":          t.Health(),
	}
}
