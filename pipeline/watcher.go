package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the pipeline when source datasets change. Events are
// debounced so a bulk copy into the source tree triggers one run, not
// one per file.
type Watcher struct {
	sourceDir string
	debounce  time.Duration
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	run       func(ctx context.Context)

	pendingMu sync.Mutex
	pending   bool
}

// NewWatcher creates a watcher over the source directory. run is
// called after each debounced batch of changes.
func NewWatcher(sourceDir string, debounce time.Duration, logger *slog.Logger, run func(ctx context.Context)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		sourceDir: sourceDir,
		debounce:  debounce,
		watcher:   fsw,
		logger:    logger,
		run:       run,
	}, nil
}

// Start begins watching. Blocks until the context is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := os.MkdirAll(w.sourceDir, 0755); err != nil {
		return err
	}

	if err := w.addWatchesRecursive(w.sourceDir); err != nil {
		return err
	}

	w.logger.Info("Watching source directory",
		"dir", w.sourceDir,
		"debounce", w.debounce)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// addWatchesRecursive adds watches to all directories under root,
// skipping hidden ones.
func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}

		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && base != "." && path != root {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

// handleFSEvent marks a run pending for relevant changes.
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	// New subdirectories need their own watches.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addWatchesRecursive(event.Name); err != nil {
				w.logger.Warn("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.logger.Debug("Source change detected", "path", event.Name, "op", event.Op.String())

	w.pendingMu.Lock()
	w.pending = true
	w.pendingMu.Unlock()
}

// flushPending triggers a run if changes accumulated since the last
// tick.
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	pending := w.pending
	w.pending = false
	w.pendingMu.Unlock()

	if !pending {
		return
	}

	w.logger.Info("Source changed, re-running pipeline")
	w.run(ctx)
}
