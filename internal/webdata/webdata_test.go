package webdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screener-cli/internal/model"
)

func TestLoadInto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web_data.json")
	raw := `{
  "county": "Johnson County",
  "latitude": 38.9391,
  "longitude": -94.6708,
  "flood_zone": "X",
  "crime_data": {"crime_score_avg": 4.2, "source": "ZIP"},
  "nuisance_data": {"severe_count": 0, "final_score": 10}
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	rec := model.Record{}
	require.NoError(t, LoadInto(rec, path))

	county, ok := rec.Get("web_demographics.county")
	require.True(t, ok)
	assert.Equal(t, "Johnson County", county)

	score, ok := rec.Get("web_demographics.crime_data.crime_score_avg")
	require.True(t, ok)
	assert.Equal(t, 4.2, score)
}

func TestLoadIntoMissingFileIsNotAnError(t *testing.T) {
	rec := model.Record{}
	require.NoError(t, LoadInto(rec, filepath.Join(t.TempDir(), "absent.json")))
	assert.Nil(t, rec.Category("web_demographics"))
}

func TestLoadIntoEmptyPath(t *testing.T) {
	rec := model.Record{}
	require.NoError(t, LoadInto(rec, ""))
	assert.Nil(t, rec.Category("web_demographics"))
}

func TestLoadIntoBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "web_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	rec := model.Record{}
	assert.Error(t, LoadInto(rec, path))
}

func TestMergeOverwritesExisting(t *testing.T) {
	rec := model.Record{
		"web_demographics": map[string]any{"county": "Old County", "kept": true},
	}
	Merge(rec, map[string]any{"county": "Johnson County"})

	county, _ := rec.Get("web_demographics.county")
	assert.Equal(t, "Johnson County", county)
	kept, _ := rec.Get("web_demographics.kept")
	assert.Equal(t, true, kept)
}
