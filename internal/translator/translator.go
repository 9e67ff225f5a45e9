package translator

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/chunker"
	"github.com/nguyentantai21042004/translate-flow/internal/scheduler"
)

// Translate chunks text, runs every chunk through the scheduler and reassembles
// the outputs in order. Failed chunks stay in place as failure markers.
// If ctx ends first, Translate stops waiting but in-flight chunks still finish.
func (t *implTranslator) Translate(ctx context.Context, text string) (Result, error) {
	segments, err := chunker.Chunk(text, t.opts.ChunkSize)
	if err != nil {
		return Result{}, err
	}
	if len(segments) == 0 {
		return Result{}, nil
	}

	items := scheduler.NewWorkItems(segments, func(seg string) string {
		return t.prompts.Build(seg, t.opts.Tone)
	})

	start := time.Now()
	completed := 0
	batch := t.scheduler.Submit(ctx, items, func(_ int, _ string) {
		completed++
		t.logger.Info(ctx, "Translating chunk %d of %d", completed, len(items))
	})

	results, err := batch.Wait(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Text:   strings.TrimSpace(strings.Join(results, "\n")),
		Chunks: len(items),
		Failed: batch.Failed(),
	}
	t.logger.Debug(ctx, "Translated %d chunks in %s", res.Chunks, time.Since(start))
	return res, nil
}
