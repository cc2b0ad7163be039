package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncedRun(t *testing.T) {
	dir := t.TempDir()

	var runs atomic.Int64
	w, err := NewWatcher(dir, 50*time.Millisecond, nil, func(_ context.Context) {
		runs.Add(1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(done)
	}()

	// Let the watcher install its watches before writing.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "occupations.tsv"), []byte("Code\tTitle\n"), 0o644))
	}

	assert.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 2*time.Second, 20*time.Millisecond, "expected a debounced run after source changes")

	cancel()
	<-done
}

func TestWatcher_NoChangesNoRuns(t *testing.T) {
	dir := t.TempDir()

	var runs atomic.Int64
	w, err := NewWatcher(dir, 20*time.Millisecond, nil, func(_ context.Context) {
		runs.Add(1)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_ = w.Start(ctx)
	assert.Zero(t, runs.Load())
}
