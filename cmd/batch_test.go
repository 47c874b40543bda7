package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screener-cli/internal/config"
)

func makeProps(n int) []*config.PropertyConfig {
	props := make([]*config.PropertyConfig, n)
	for i := range props {
		props[i] = &config.PropertyConfig{PropertyName: "Property " + string(rune('A'+i))}
	}
	return props
}

func TestProcessBatch_Empty(t *testing.T) {
	err := processBatch(context.Background(), nil, 3, func(_ context.Context, _ *config.PropertyConfig) error {
		t.Fatal("screen should not be called for an empty batch")
		return nil
	})
	require.NoError(t, err)
}

func TestProcessBatch_ScreensEveryProperty(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}

	err := processBatch(context.Background(), makeProps(5), 2, func(_ context.Context, prop *config.PropertyConfig) error {
		mu.Lock()
		seen[prop.PropertyName] = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 5)
}

func TestProcessBatch_IndividualFailureDoesNotAbort(t *testing.T) {
	var calls atomic.Int64

	err := processBatch(context.Background(), makeProps(4), 2, func(_ context.Context, prop *config.PropertyConfig) error {
		calls.Add(1)
		if prop.PropertyName == "Property B" {
			return eris.New("no pdf files found")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), calls.Load(), "all properties should be attempted despite one failing")
}

func TestProcessBatch_RespectsConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int64
	release := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- processBatch(context.Background(), makeProps(6), 2, func(_ context.Context, _ *config.PropertyConfig) error {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			inFlight.Add(-1)
			return nil
		})
	}()

	close(release)
	require.NoError(t, <-done)
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestProcessBatch_ZeroConcurrencyDefaultsToOne(t *testing.T) {
	var calls atomic.Int64
	err := processBatch(context.Background(), makeProps(2), 0, func(_ context.Context, _ *config.PropertyConfig) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestPropertyConfigsIn(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	paths, err := propertyConfigsIn(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
	}, paths)
}

func TestPropertyConfigsIn_MissingDir(t *testing.T) {
	_, err := propertyConfigsIn(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
