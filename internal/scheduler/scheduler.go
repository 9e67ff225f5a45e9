package scheduler

import (
	"context"
	"fmt"
	"time"
)

// Submit starts items on a fresh Batch. Item i gets SequenceIndex i regardless of
// the value it carried. onProgress, if set, is called from the batch's coordinator
// goroutine, one call at a time, in completion order.
func (s *implScheduler) Submit(ctx context.Context, items []WorkItem, onProgress ProgressFunc) *Batch {
	b := newBatch(items, s.opts.Concurrency, onProgress)
	go s.coordinate(ctx, b)
	return b
}

// Run submits items and waits for the batch to complete.
func (s *implScheduler) Run(ctx context.Context, items []WorkItem, onProgress ProgressFunc) []string {
	return s.Submit(ctx, items, onProgress).Results()
}

// Process builds a Scheduler and runs items on it. Configuration errors are
// returned before anything is dispatched; per-item failures never are.
func Process(ctx context.Context, client Transformer, opts Options, items []WorkItem, onProgress ProgressFunc) ([]string, error) {
	s, err := New(client, nil, opts)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, items, onProgress), nil
}

// coordinate is the only goroutine touching b's pending, inFlight and results.
// Freed slots are refilled immediately rather than in waves.
func (s *implScheduler) coordinate(ctx context.Context, b *Batch) {
	start := time.Now()
	total := b.Len()

	for len(b.pending) > 0 || len(b.inFlight) > 0 {
		for len(b.inFlight) < s.opts.Concurrency && len(b.pending) > 0 {
			s.dispatch(ctx, b, b.next())
		}
		s.complete(ctx, b, <-b.completions)
	}

	BatchesTotal.Inc()
	if total > 0 {
		s.logger.Info(ctx, "Batch complete: %d items, %d failed, took %s", total, len(b.failed), time.Since(start).Round(time.Millisecond))
	}
	b.finish()
}

func (s *implScheduler) dispatch(ctx context.Context, b *Batch, item WorkItem) {
	b.inFlight[item.SequenceIndex] = struct{}{}
	InFlight.Inc()
	s.logger.Debug(ctx, "Dispatching chunk %d (%d in flight)", item.SequenceIndex, len(b.inFlight))

	go func() {
		t0 := time.Now()
		output, err := s.call(ctx, item)
		b.completions <- completion{
			index:  item.SequenceIndex,
			output: output,
			err:    err,
			secs:   time.Since(t0).Seconds(),
		}
	}()
}

// call performs one Transform attempt; panics surface as errors.
func (s *implScheduler) call(ctx context.Context, item WorkItem) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTransformPanicked, r)
		}
	}()

	if s.opts.ItemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ItemTimeout)
		defer cancel()
	}

	return s.client.Transform(ctx, item.Payload, item.Request)
}

func (s *implScheduler) complete(ctx context.Context, b *Batch, c completion) {
	result := c.output
	if c.err != nil {
		result = FailureMarker(c.index)
		b.failed = append(b.failed, c.index)
		ItemsTotal.WithLabelValues("failure").Inc()
		s.logger.Warn(ctx, "Error processing chunk %d: %v", c.index, c.err)
	} else {
		ItemsTotal.WithLabelValues("success").Inc()
	}

	b.results[c.index] = result
	delete(b.inFlight, c.index)
	InFlight.Dec()
	ItemDuration.Observe(c.secs)

	if b.onProgress != nil {
		b.onProgress(c.index, result)
	}
}
