package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/store"
)

// setTestConfig points the package config at a throwaway store path.
func setTestConfig(t *testing.T) {
	t.Helper()
	prev := cfg
	cfg = &config.Config{
		Store: config.StoreConfig{Path: filepath.Join(t.TempDir(), "screener.db")},
		PDF:   config.PDFConfig{PdfToTextPath: "pdftotext"},
		Batch: config.BatchConfig{MaxConcurrentProperties: 2},
		Log:   config.LogConfig{Level: "info", Format: "json"},
	}
	t.Cleanup(func() { cfg = prev })
}

func TestScreenProperty_ExtractionFailureRecordsFailedRun(t *testing.T) {
	setTestConfig(t)
	ctx := context.Background()

	st, err := initStore(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	prop := &config.PropertyConfig{
		PropertyName: "Maple Crossing",
		Paths: config.PropertyPaths{
			PDFDir: filepath.Join(t.TempDir(), "does-not-exist"),
		},
	}

	_, err = screenProperty(ctx, st, prop)
	require.Error(t, err)

	runs, err := st.ListRuns(ctx, store.RunFilter{Property: "Maple Crossing"})
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, model.RunStatusFailed, runs[0].Status)
	assert.NotEmpty(t, runs[0].Error)
}

func TestScreenProperty_NilStoreSkipsPersistence(t *testing.T) {
	setTestConfig(t)

	prop := &config.PropertyConfig{
		PropertyName: "Oak Terrace",
		Paths: config.PropertyPaths{
			PDFDir: filepath.Join(t.TempDir(), "missing"),
		},
	}

	_, err := screenProperty(context.Background(), nil, prop)
	assert.Error(t, err)
}

func TestInitStore_CreatesDatabase(t *testing.T) {
	setTestConfig(t)

	st, err := initStore(context.Background())
	require.NoError(t, err)
	require.NoError(t, st.Close())

	_, err = os.Stat(cfg.Store.Path)
	assert.NoError(t, err)
}

func TestReadRecord_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"property":{"units":250}}`), 0o644))

	rec, err := readRecord(path)
	require.NoError(t, err)

	v, ok := rec.Get("property.units")
	require.True(t, ok)
	assert.Equal(t, float64(250), v)
}

func TestReadRecord_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := readRecord(path)
	assert.Error(t, err)
}

func TestReadRecord_MissingFile(t *testing.T) {
	_, err := readRecord(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
