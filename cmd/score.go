package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/model"
	"github.com/sells-group/screener-cli/internal/score"
)

var (
	scoreInput    string
	scoreProperty string
	scoreFull     bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Calculate component scores from an extracted record",
	Long: `Reads a record JSON (as produced by the extract command) and calculates
the eleven investment component scores. By default only the stage2_scores
category is printed; --full prints the whole record with scores attached.

A property config may be supplied so state-dependent components (business
friendliness) can see the property details.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := readRecord(scoreInput)
		if err != nil {
			return err
		}

		if scoreProperty != "" {
			prop, err := config.LoadProperty(scoreProperty)
			if err != nil {
				return err
			}
			rec["config"] = prop.AsRecordCategory()
		}

		rec = score.NewCalculator().CalculateAll(rec)

		var out any = rec.Category("stage2_scores")
		if scoreFull {
			out = rec
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreInput, "input", "", "record JSON file (default: stdin)")
	scoreCmd.Flags().StringVar(&scoreProperty, "property", "", "optional property config JSON")
	scoreCmd.Flags().BoolVar(&scoreFull, "full", false, "print the full record instead of just the scores")
	rootCmd.AddCommand(scoreCmd)
}

// readRecord decodes a record JSON from the given file, or stdin when the
// path is empty.
func readRecord(path string) (model.Record, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "open record %s", path)
		}
		defer f.Close() //nolint:errcheck
		r = f
	}

	var rec model.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, eris.Wrap(err, "decode record JSON")
	}
	return rec, nil
}
