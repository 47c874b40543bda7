package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
)

// Extractor pulls structured screening data out of CoStar PDF reports.
type Extractor struct {
	reader *pdftext.Reader
}

// New creates an Extractor using the given page-aware PDF reader.
func New(reader *pdftext.Reader) *Extractor {
	return &Extractor{reader: reader}
}

// ExtractAll processes every PDF in dir. Files are routed by filename
// keyword; anything unrecognized is treated as a combined report and run
// through every sub-extractor. A sub-extractor that finds nothing degrades
// only its own category; only I/O failures surface as errors.
func (e *Extractor) ExtractAll(ctx context.Context, dir string) (model.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: read dir %s", dir)
	}

	rec := model.Record{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".pdf") || strings.HasPrefix(name, "~$") {
			continue
		}
		path := filepath.Join(dir, name)

		doc, err := e.reader.Read(ctx, path)
		if err != nil {
			return nil, eris.Wrapf(err, "extract: read pdf %s", name)
		}

		rec["_source_pdf"] = map[string]any{
			"filename":    name,
			"full_path":   path,
			"reports_dir": dir,
		}

		lower := strings.ToLower(name)
		switch {
		case strings.Contains(lower, "demographic"):
			extractDemographics(doc, rec)
		case strings.Contains(lower, "property"):
			extractProperty(doc, rec)
		case strings.Contains(lower, "rent"):
			extractRentComps(doc, rec)
		case strings.Contains(lower, "asset"), strings.Contains(lower, "market"):
			extractMarket(doc, rec)
		default:
			zap.L().Info("extract: processing combined report", zap.String("file", name))
			extractCombined(doc, rec)
		}
	}

	return rec, nil
}

// extractCombined runs every sub-extractor over one combined report. The
// subject-property pass goes first since later passes prefer its values.
func extractCombined(doc *pdftext.Document, rec model.Record) {
	extractSubjectProperty(doc, rec)
	extractDemographics(doc, rec)
	extractProperty(doc, rec)
	extractRentComps(doc, rec)
	extractSaleComps(doc, rec)
	extractMarket(doc, rec)
	extractEducation(doc, rec)
	extractCapRates(doc, rec)
	extractEmployment(doc, rec)
}
