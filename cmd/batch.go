package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/screener-cli/internal/config"
)

var batchDir string

var batchCmd = &cobra.Command{
	Use:   "batch [property-config...]",
	Short: "Screen multiple properties concurrently",
	Long:  "Runs the full screening pipeline for every property config given as an argument, or for every .json file under --dir. Properties run concurrently up to batch.max_concurrent_properties; one property failing does not abort the batch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		paths := args
		if batchDir != "" {
			found, err := propertyConfigsIn(batchDir)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		}
		if len(paths) == 0 {
			return eris.New("batch: no property configs given (pass paths or --dir)")
		}

		props := make([]*config.PropertyConfig, 0, len(paths))
		for _, p := range paths {
			prop, err := config.LoadProperty(p)
			if err != nil {
				return eris.Wrapf(err, "batch: load %s", p)
			}
			props = append(props, prop)
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		return processBatch(ctx, props, cfg.Batch.MaxConcurrentProperties, func(ctx context.Context, prop *config.PropertyConfig) error {
			_, err := screenProperty(ctx, st, prop)
			return err
		})
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "directory of property config JSON files")
	rootCmd.AddCommand(batchCmd)
}

// propertyConfigsIn lists the .json files directly under dir, sorted by name.
func propertyConfigsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read dir %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// screenFunc is the callback signature for screening one property.
type screenFunc func(ctx context.Context, prop *config.PropertyConfig) error

// processBatch screens properties concurrently with the given limit. An
// individual failure is logged and counted but does not abort the batch;
// the store records it against the property's run.
func processBatch(ctx context.Context, props []*config.PropertyConfig, concurrency int, screen screenFunc) error {
	if len(props) == 0 {
		zap.L().Info("no properties to screen")
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}

	zap.L().Info("processing batch",
		zap.Int("properties", len(props)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, prop := range props {
		prop := prop
		g.Go(func() error {
			log := zap.L().With(zap.String("property", prop.PropertyName))

			if err := screen(gctx, prop); err != nil {
				failed.Add(1)
				log.Error("screening failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
