package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractPDFDir string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured data from a directory of CoStar PDFs",
	Long:  "Runs only the PDF extraction stage and prints the raw record as JSON, including per-field page provenance. Useful for checking what the extractors found before scoring.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rec, err := newExtractor().ExtractAll(ctx, extractPDFDir)
		if err != nil {
			return eris.Wrapf(err, "extract %s", extractPDFDir)
		}

		zap.L().Info("extraction complete", zap.Int("categories", len(rec)))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractPDFDir, "pdf-dir", "", "directory containing the property's PDF reports (required)")
	_ = extractCmd.MarkFlagRequired("pdf-dir")
	rootCmd.AddCommand(extractCmd)
}
