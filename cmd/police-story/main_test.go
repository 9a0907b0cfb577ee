package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailystar-data/police-story-go/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	datasetDir, archivePath := config.DatasetDir, config.ArchivePath
	t.Cleanup(func() {
		config.DatasetDir, config.ArchivePath = datasetDir, archivePath
	})

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateEmbeddedContent(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err, out)
	assert.Contains(t, out, "0 error(s)")
}

func TestValidateFailsOnBrokenDataset(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"officers_en.json", "officers_bn.json", "absconded_en.json", "absconded_bn.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`[]`), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "officers_bn.json"), []byte(`[{"name": ""}]`), 0o644))

	_, err := run(t, "validate", "--dataset-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bn")
}

func TestValidatePrintsRejectedReport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"officers_en.json", "officers_bn.json", "absconded_en.json", "absconded_bn.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`[]`), 0o644))
	}

	out, err := run(t, "validate", "--dataset-dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "store rejected")
	assert.Contains(t, out, "empty_officer_table")
	assert.Contains(t, err.Error(), "integrity error")
}

func TestServeRefusesRejectedContent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"officers_en.json", "officers_bn.json", "absconded_en.json", "absconded_bn.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`[]`), 0o644))
	}

	_, err := run(t, "serve", "--dataset-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty_officer_table")
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bn.html")
	_, err := run(t, "render", "--locale", "bn-BD", "--out", path)
	require.NoError(t, err)

	html, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(html), `<html lang="bn-BD">`)
}

func TestRenderUnknownLocale(t *testing.T) {
	_, err := run(t, "render", "--locale", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown locale")
}

func TestArchiveToSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.db")
	out, err := run(t, "archive", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "to sqlite3")

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
