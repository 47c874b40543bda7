// Package webdata loads externally gathered provider results (schools,
// crime, flood, nuisance, climate, employer stability) and merges them into
// a screening record's web_demographics namespace. The providers themselves
// run elsewhere; this side only consumes their JSON output.
package webdata

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
)

// Load reads a provider-results JSON file. The file holds a single flat
// object of web_demographics fields, nested per provider.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "webdata: read %s", path)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, eris.Wrapf(err, "webdata: parse %s", path)
	}
	return data, nil
}

// Merge folds provider results into the record's web_demographics category.
// Existing fields are overwritten; a missing file upstream simply means
// this is never called and the category stays absent.
func Merge(rec model.Record, data map[string]any) {
	if len(data) == 0 {
		return
	}
	web := rec.EnsureCategory("web_demographics")
	for k, v := range data {
		web[k] = v
	}
	zap.L().Info("webdata: provider results merged", zap.Int("fields", len(data)))
}

// LoadInto is the common path: read the file and merge it. A missing or
// empty path is not an error, the web_demographics category just stays
// absent and downstream scores report their data gaps.
func LoadInto(rec model.Record, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zap.L().Warn("webdata: file not found, skipping", zap.String("path", path))
		return nil
	}

	data, err := Load(path)
	if err != nil {
		return err
	}
	Merge(rec, data)
	return nil
}
