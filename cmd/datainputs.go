package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/datainputs"
)

var (
	datainputsInput    string
	datainputsProperty string
	datainputsFormulas bool
	datainputsRefs     bool
)

var datainputsCmd = &cobra.Command{
	Use:   "datainputs",
	Short: "Map a scored record onto the Data Inputs sheet layout",
	Long: `Reads a record JSON (extract output, optionally already scored) and walks
the field catalog, printing the resolved Data Inputs rows with their row
numbers, values, and source attributions.

--refs prints the field-to-cell reference map instead, and --formulas the
pre-authored downstream formulas; neither needs an input record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := datainputs.NewMapper()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if datainputsRefs {
			return enc.Encode(m.CellReferences())
		}
		if datainputsFormulas {
			return enc.Encode(m.FormulaMappings())
		}

		rec, err := readRecord(datainputsInput)
		if err != nil {
			return err
		}

		propCfg := map[string]any{}
		if datainputsProperty != "" {
			prop, err := config.LoadProperty(datainputsProperty)
			if err != nil {
				return err
			}
			propCfg = prop.AsRecordCategory()
		}

		rows := m.MapToDataInputs(rec, propCfg)
		return enc.Encode(rows)
	},
}

func init() {
	datainputsCmd.Flags().StringVar(&datainputsInput, "input", "", "record JSON file (default: stdin)")
	datainputsCmd.Flags().StringVar(&datainputsProperty, "property", "", "optional property config JSON")
	datainputsCmd.Flags().BoolVar(&datainputsFormulas, "formulas", false, "print the downstream formula mappings")
	datainputsCmd.Flags().BoolVar(&datainputsRefs, "refs", false, "print the field-to-cell reference map")
	rootCmd.AddCommand(datainputsCmd)
}
