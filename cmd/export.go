package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/datainputs"
	"github.com/sells-group/screener-cli/internal/model"
)

var (
	exportRunID    string
	exportInput    string
	exportProperty string
	exportOut      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the Data Inputs rows to an XLSX workbook",
	Long: `Builds the Data Inputs rows for a record and writes them to a plain
workbook: field labels in column B, values in column C, sources in columns
D and E, at the exact row numbers the catalog walk assigns. The record
comes either from a stored run (--run) or a record JSON file (--input).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var rec model.Record
		switch {
		case exportRunID != "":
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err := st.GetRun(ctx, exportRunID)
			if err != nil {
				return eris.Wrap(err, "export")
			}
			if run.Result == nil {
				return eris.Errorf("export: run %s has no result", exportRunID)
			}
			rec = run.Result
		case exportInput != "":
			r, err := readRecord(exportInput)
			if err != nil {
				return err
			}
			rec = r
		default:
			return eris.New("export: either --run or --input is required")
		}

		propCfg := map[string]any{}
		if exportProperty != "" {
			prop, err := config.LoadProperty(exportProperty)
			if err != nil {
				return err
			}
			propCfg = prop.AsRecordCategory()
		}

		rows := datainputs.NewMapper().MapToDataInputs(rec, propCfg)

		if err := writeWorkbook(exportOut, rows); err != nil {
			return err
		}

		zap.L().Info("workbook written",
			zap.String("path", exportOut),
			zap.Int("rows", len(rows)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRunID, "run", "", "stored run ID to export")
	exportCmd.Flags().StringVar(&exportInput, "input", "", "record JSON file to export")
	exportCmd.Flags().StringVar(&exportProperty, "property", "", "optional property config JSON")
	exportCmd.Flags().StringVar(&exportOut, "out", "data_inputs.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}

// writeWorkbook writes the rows to a single-sheet workbook. Values and
// sources only; the styled analysis workbook is maintained elsewhere and
// pulls from this sheet by cell reference.
func writeWorkbook(path string, rows []model.DataInputRow) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(datainputs.SheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	for _, r := range rows {
		// DataInputRow rows are 1-based spreadsheet rows.
		idx := r.Row - 1
		sheet.Cell(idx, 1).SetString(r.Field)
		sheet.Cell(idx, 2).SetValue(r.Value)
		sheet.Cell(idx, 3).SetString(r.Source.Label)
		if r.Source.URL != "" {
			sheet.Cell(idx, 4).SetString(r.Source.URL)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}
