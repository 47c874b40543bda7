package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/datainputs"
	"github.com/sells-group/screener-cli/internal/extract"
	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/pdftext"
	"github.com/sells-group/screener-cli/internal/score"
	"github.com/sells-group/screener-cli/internal/store"
	"github.com/sells-group/screener-cli/internal/webdata"
)

func initStore(ctx context.Context) (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "init sqlite store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

func newExtractor() *extract.Extractor {
	reader := pdftext.NewReader(pdftext.NewPdfToText(cfg.PDF.PdfToTextPath))
	return extract.New(reader)
}

// screenResult is the full output of one property screening.
type screenResult struct {
	RunID      string               `json:"run_id"`
	Property   string               `json:"property"`
	Record     model.Record         `json:"record"`
	DataInputs []model.DataInputRow `json:"data_inputs"`
}

// screenProperty runs the whole pipeline for one property config: PDF
// extraction, web data merge, component scoring, Data Inputs mapping.
// The run is persisted to st at every stage transition; a nil st skips
// persistence entirely.
func screenProperty(ctx context.Context, st store.Store, prop *config.PropertyConfig) (*screenResult, error) {
	log := zap.L().With(zap.String("property", prop.PropertyName))

	var runID string
	if st != nil {
		run, err := st.CreateRun(ctx, prop.PropertyName, prop.Paths.PDFDir)
		if err != nil {
			return nil, eris.Wrap(err, "create run")
		}
		runID = run.ID
		if err := st.UpdateRunStatus(ctx, runID, model.RunStatusRunning); err != nil {
			return nil, eris.Wrap(err, "mark run running")
		}
	}

	rec, err := runPipeline(ctx, prop)
	if err != nil {
		if st != nil && runID != "" {
			if fErr := st.FailRun(ctx, runID, err); fErr != nil {
				log.Warn("failed to record run failure", zap.Error(fErr))
			}
		}
		return nil, err
	}

	rows := datainputs.NewMapper().MapToDataInputs(rec, prop.AsRecordCategory())

	if st != nil && runID != "" {
		if err := st.UpdateRunResult(ctx, runID, rec); err != nil {
			return nil, eris.Wrap(err, "persist run result")
		}
	}

	log.Info("screening complete",
		zap.String("run_id", runID),
		zap.Int("data_input_rows", len(rows)),
	)

	return &screenResult{
		RunID:      runID,
		Property:   prop.PropertyName,
		Record:     rec,
		DataInputs: rows,
	}, nil
}

// runPipeline performs extraction through scoring without touching the store.
func runPipeline(ctx context.Context, prop *config.PropertyConfig) (model.Record, error) {
	rec, err := newExtractor().ExtractAll(ctx, prop.Paths.PDFDir)
	if err != nil {
		return nil, eris.Wrapf(err, "extract %s", prop.Paths.PDFDir)
	}

	if err := webdata.LoadInto(rec, prop.Paths.WebDataFile); err != nil {
		return nil, eris.Wrap(err, "load web data")
	}

	rec["config"] = prop.AsRecordCategory()
	rec = score.NewCalculator().CalculateAll(rec)

	return rec, nil
}
