package translator

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/chunker"
	"github.com/nguyentantai21042004/translate-flow/internal/exporter"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/prompt"
	"github.com/nguyentantai21042004/translate-flow/internal/scheduler"
)

type Options struct {
	ChunkSize   int
	Tone        string
	ArchivedDir string
	// Concurrency and ItemTimeout configure the chunk scheduler.
	Concurrency int
	ItemTimeout time.Duration
}

type implTranslator struct {
	scheduler scheduler.Scheduler
	prompts   *prompt.Builder
	exporter  exporter.Exporter
	opts      Options
	logger    logger.Logger
}

// New creates a Translator driving client through a bounded scheduler.
// exp may be nil when only Translate is used.
func New(client scheduler.Transformer, prompts *prompt.Builder, exp exporter.Exporter, opts Options, log logger.Logger) (Translator, error) {
	if opts.ChunkSize <= 0 {
		return nil, chunker.ErrInvalidTargetSize
	}
	if opts.Tone == "" {
		opts.Tone = prompt.DefaultTone
	}
	if log == nil {
		log = logger.NewNop()
	}
	if client != nil {
		client = skipBlank{next: client}
	}

	sched, err := scheduler.New(client, log, scheduler.Options{
		Concurrency: opts.Concurrency,
		ItemTimeout: opts.ItemTimeout,
	})
	if err != nil {
		return nil, err
	}

	if _, ok := prompts.Lookup(opts.Tone); !ok {
		log.Warn(context.Background(), "Unknown tone %q, chunks will be sent without instructions", opts.Tone)
	}

	return &implTranslator{
		scheduler: sched,
		prompts:   prompts,
		exporter:  exp,
		opts:      opts,
		logger:    log,
	}, nil
}
