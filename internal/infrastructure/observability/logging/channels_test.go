package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level slog.Level) (*ChanneledLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := NewChanneledLogger(&LoggerConfig{Writer: &buf, JSONFormat: true, DefaultLevel: level})
	require.NoError(t, err)
	return l, &buf
}

func TestChannelAttributeIsAttached(t *testing.T) {
	l, buf := newBufferLogger(t, slog.LevelInfo)

	l.Dataset().Info("loaded", "records", 8)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset", entry["channel"])
	assert.Equal(t, "loaded", entry["msg"])
	assert.EqualValues(t, 8, entry["records"])
}

func TestSetChannelLevel(t *testing.T) {
	l, buf := newBufferLogger(t, slog.LevelInfo)

	l.Render().Debug("hidden")
	assert.Zero(t, buf.Len())

	require.NoError(t, l.SetChannelLevel(ChannelRender, slog.LevelDebug))
	l.Render().Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, "DEBUG", l.GetChannelLevels()["render"])
	assert.Equal(t, "INFO", l.GetChannelLevels()["content"])

	assert.Error(t, l.SetChannelLevel(Channel("nope"), slog.LevelDebug))
}

func TestWithLocaleAndSlowQuery(t *testing.T) {
	l, buf := newBufferLogger(t, slog.LevelInfo)

	l.WithLocale(ChannelContent, "bn").Info("tree built")
	l.LogSlowQuery("INSERT INTO officers\n\t(name) VALUES (?)", 0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"locale":"bn"`)
	assert.Contains(t, lines[1], `"query":"INSERT INTO officers (name) VALUES (?)"`)
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, ok = ParseLevel("loud")
	assert.False(t, ok)
}
