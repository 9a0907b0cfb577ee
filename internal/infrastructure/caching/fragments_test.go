package caching

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentsStoreRoundTrip(t *testing.T) {
	fs := NewFragmentsStore(0)

	_, ok := fs.GetHTMLChunk("snap1", "bn", "article")
	assert.False(t, ok)

	fs.SetHTMLChunk("snap1", "bn", "article", []byte("<p>১</p>"))
	chunk, ok := fs.GetHTMLChunk("snap1", "bn", "article")
	require.True(t, ok)
	assert.Equal(t, "<p>১</p>", string(chunk.HTML))

	_, ok = fs.GetHTMLChunk("snap1", "en", "article")
	assert.False(t, ok)

	assert.Equal(t, FragmentStats{Entries: 1, Hits: 1, Misses: 2}, fs.Stats())
}

func TestFragmentsStoreExpires(t *testing.T) {
	now := time.Date(2024, 8, 6, 12, 0, 0, 0, time.UTC)
	fs := NewFragmentsStore(time.Minute)
	fs.now = func() time.Time { return now }

	fs.SetHTMLChunk("snap1", "en", "article", []byte("x"))
	now = now.Add(2 * time.Minute)

	_, ok := fs.GetHTMLChunk("snap1", "en", "article")
	assert.False(t, ok)
}

func TestFragmentsStoreDropsOlderSnapshots(t *testing.T) {
	fs := NewFragmentsStore(0)
	fs.SetHTMLChunk("snap1", "en", "article", []byte("old"))
	fs.SetHTMLChunk("snap2", "en", "article", []byte("new"))

	_, ok := fs.GetHTMLChunk("snap1", "en", "article")
	assert.False(t, ok)
	assert.Equal(t, 1, fs.Stats().Entries)
}

func TestFragmentsStoreConcurrentAccess(t *testing.T) {
	fs := NewFragmentsStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locale := "en"
			if i%2 == 0 {
				locale = "bn"
			}
			fs.SetHTMLChunk("snap", locale, "article", []byte(locale))
			_, _ = fs.GetHTMLChunk("snap", locale, "article")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 2, fs.Stats().Entries)
}
