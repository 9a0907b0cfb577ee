// Package caching keeps rendered HTML so repeated page requests skip the
// template pass.
package caching

import (
	"sync"
	"time"
)

// DefaultFragmentTTL bounds how long a rendered fragment is served.
const DefaultFragmentTTL = time.Hour

// HTMLChunk is one cached rendering.
type HTMLChunk struct {
	HTML        []byte
	SnapshotID  string
	Locale      string
	Fragment    string
	LastUpdated time.Time
}

// FragmentStats reports cache effectiveness.
type FragmentStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}

// FragmentsStore caches rendered HTML per snapshot, locale and fragment. A
// chunk from another snapshot never matches, so a rebuilt store never sees
// stale markup.
type FragmentsStore struct {
	chunks map[string]*HTMLChunk
	ttl    time.Duration
	now    func() time.Time
	hits   int64
	misses int64
	mu     sync.RWMutex
}

// NewFragmentsStore creates a store; a non-positive ttl uses the default.
func NewFragmentsStore(ttl time.Duration) *FragmentsStore {
	if ttl <= 0 {
		ttl = DefaultFragmentTTL
	}
	return &FragmentsStore{
		chunks: make(map[string]*HTMLChunk),
		ttl:    ttl,
		now:    time.Now,
	}
}

// BuildChunkKey creates a unique key for a fragment.
func BuildChunkKey(snapshotID, locale, fragment string) string {
	return snapshotID + ":" + locale + ":" + fragment
}

// GetHTMLChunk returns a live chunk.
func (fs *FragmentsStore) GetHTMLChunk(snapshotID, locale, fragment string) (*HTMLChunk, bool) {
	key := BuildChunkKey(snapshotID, locale, fragment)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	chunk, exists := fs.chunks[key]
	if !exists || fs.now().Sub(chunk.LastUpdated) > fs.ttl {
		fs.misses++
		return nil, false
	}
	fs.hits++
	return chunk, true
}

// SetHTMLChunk stores html and drops chunks from older snapshots.
func (fs *FragmentsStore) SetHTMLChunk(snapshotID, locale, fragment string, html []byte) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for key, chunk := range fs.chunks {
		if chunk.SnapshotID != snapshotID {
			delete(fs.chunks, key)
		}
	}

	fs.chunks[BuildChunkKey(snapshotID, locale, fragment)] = &HTMLChunk{
		HTML:        html,
		SnapshotID:  snapshotID,
		Locale:      locale,
		Fragment:    fragment,
		LastUpdated: fs.now().UTC(),
	}
}

// Stats returns a point-in-time view of the cache.
func (fs *FragmentsStore) Stats() FragmentStats {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return FragmentStats{Entries: len(fs.chunks), Hits: fs.hits, Misses: fs.misses}
}
