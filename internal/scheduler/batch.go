package scheduler

import (
	"context"
	"sort"
)

// Batch is the state of one submission. It is owned by a single coordinator
// goroutine until Done is closed; afterwards it is read-only.
type Batch struct {
	pending  []WorkItem
	inFlight map[int]struct{}
	results  []string
	failed   []int

	completions chan completion
	onProgress  ProgressFunc
	done        chan struct{}
}

type completion struct {
	index  int
	output string
	err    error
	secs   float64
}

func newBatch(items []WorkItem, limit int, onProgress ProgressFunc) *Batch {
	pending := make([]WorkItem, len(items))
	for i, it := range items {
		it.SequenceIndex = i
		pending[i] = it
	}

	return &Batch{
		pending:     pending,
		inFlight:    make(map[int]struct{}, limit),
		results:     make([]string, len(items)),
		completions: make(chan completion, limit),
		onProgress:  onProgress,
		done:        make(chan struct{}),
	}
}

// Len is the number of items in the batch.
func (b *Batch) Len() int { return len(b.results) }

// Done is closed exactly once, after every item has reached a terminal state.
func (b *Batch) Done() <-chan struct{} { return b.done }

// Results blocks until the batch completes and returns the outputs in submission order.
func (b *Batch) Results() []string {
	<-b.done
	out := make([]string, len(b.results))
	copy(out, b.results)
	return out
}

// Wait is Results bounded by ctx. Giving up on ctx does not cancel the batch.
func (b *Batch) Wait(ctx context.Context) ([]string, error) {
	select {
	case <-b.done:
		return b.Results(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Failed blocks until the batch completes and returns the indices of failed items, ascending.
func (b *Batch) Failed() []int {
	<-b.done
	out := make([]int, len(b.failed))
	copy(out, b.failed)
	return out
}

func (b *Batch) next() WorkItem {
	it := b.pending[0]
	b.pending = b.pending[1:]
	return it
}

func (b *Batch) finish() {
	sort.Ints(b.failed)
	close(b.done)
}
