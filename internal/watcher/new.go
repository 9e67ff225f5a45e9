package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"golang.org/x/sync/semaphore"
)

type Options struct {
	InputDir string
	// Extensions are matched case-insensitively, with the leading dot.
	Extensions    []string
	MaxConcurrent int
	// SettleDelay gives writers time to finish before a new file is read.
	SettleDelay time.Duration
	// ScanExisting handles files already present when Start is called.
	ScanExisting bool
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	// Default to 2 concurrent if not specified
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt", ".md"}
	}
	exts := make(map[string]struct{}, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &implWatcher{
		opts:       opts,
		extensions: exts,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		sem:        semaphore.NewWeighted(int64(opts.MaxConcurrent)),
	}, nil
}
