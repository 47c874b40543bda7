package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/screener-cli/internal/config"
	"github.com/sells-group/screener-cli/internal/store"
)

var (
	screenPropertyFile string
	screenPDFDir       string
	screenWebData      string
	screenNoStore      bool
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run the full screening pipeline for one property",
	Long:  "Extracts every PDF in the property's report directory, merges web-scraped demographics, calculates the eleven component scores, and emits the Data Inputs rows. The run is recorded in the local store unless --no-store is set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		prop, err := loadPropertyWithOverrides()
		if err != nil {
			return err
		}

		var st store.Store
		if !screenNoStore {
			s, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer s.Close() //nolint:errcheck
			st = s
		}

		result, err := screenProperty(ctx, st, prop)
		if err != nil {
			return eris.Wrap(err, "screen")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	screenCmd.Flags().StringVar(&screenPropertyFile, "property", "", "path to property config JSON (required)")
	screenCmd.Flags().StringVar(&screenPDFDir, "pdf-dir", "", "override the PDF directory from the property config")
	screenCmd.Flags().StringVar(&screenWebData, "web-data", "", "override the web data file from the property config")
	screenCmd.Flags().BoolVar(&screenNoStore, "no-store", false, "skip recording the run in the local store")
	_ = screenCmd.MarkFlagRequired("property")
	rootCmd.AddCommand(screenCmd)
}

// loadPropertyWithOverrides loads the --property config and applies any
// path overrides given on the command line.
func loadPropertyWithOverrides() (*config.PropertyConfig, error) {
	prop, err := config.LoadProperty(screenPropertyFile)
	if err != nil {
		return nil, err
	}
	if screenPDFDir != "" {
		prop.Paths.PDFDir = screenPDFDir
	}
	if screenWebData != "" {
		prop.Paths.WebDataFile = screenWebData
	}
	return prop, nil
}
