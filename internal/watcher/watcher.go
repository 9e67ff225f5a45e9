package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"golang.org/x/sync/semaphore"
)

type implWatcher struct {
	opts       Options
	extensions map[string]struct{}
	handler    EventHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
	sem        *semaphore.Weighted
	wg         sync.WaitGroup
	// scanned holds paths handled by the startup scan whose CREATE event may
	// still be queued. Only the Start goroutine touches it.
	scanned map[string]struct{}
}

// Start begins monitoring the input directory for new documents.
// It returns once ctx is done and every started handler has returned.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.opts.MaxConcurrent, w.opts.InputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.opts.Extensions, ", "))

	if w.opts.ScanExisting {
		if err := w.scanExisting(ctx); err != nil {
			w.logger.Warn(ctx, "Failed to scan %s: %v", w.opts.InputDir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing translations to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !w.isDocument(event.Name) {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}
			if _, ok := w.scanned[event.Name]; ok {
				delete(w.scanned, event.Name)
				w.logger.Debug(ctx, "Already queued by startup scan: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New document detected: %s", event.Name)
			if err := w.dispatch(ctx, event.Name, w.opts.SettleDelay); err != nil {
				w.wg.Wait()
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch blocks until a slot is free, then handles path in its own goroutine.
func (w *implWatcher) dispatch(ctx context.Context, path string, settle time.Duration) error {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.Release(1)

		if settle > 0 {
			select {
			case <-time.After(settle):
			case <-ctx.Done():
				return
			}
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) scanExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.opts.InputDir)
	if err != nil {
		return err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if path := filepath.Join(w.opts.InputDir, e.Name()); w.isDocument(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)

	w.scanned = make(map[string]struct{}, len(files))
	for _, path := range files {
		w.scanned[path] = struct{}{}
		w.logger.Info(ctx, "Existing document queued: %s", path)
		if err := w.dispatch(ctx, path, 0); err != nil {
			return err
		}
	}
	return nil
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isDocument reports whether path has a watched extension. Hidden files are skipped.
func (w *implWatcher) isDocument(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	_, ok := w.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
