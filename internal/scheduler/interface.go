package scheduler

import "context"

// Transformer is the external call a work item is driven through.
// It may block for an arbitrary time and may fail; no idempotence is assumed.
type Transformer interface {
	Transform(ctx context.Context, payload, request string) (string, error)
}

// ProgressFunc is notified once per item when it reaches a terminal state.
// result is the transformed text or the item's failure marker.
type ProgressFunc func(index int, result string)

// Scheduler runs batches of work items with a bounded number of in-flight calls
type Scheduler interface {
	// Submit starts the batch and returns without waiting for it.
	Submit(ctx context.Context, items []WorkItem, onProgress ProgressFunc) *Batch
	// Run submits the batch and returns its results once every item has finished.
	Run(ctx context.Context, items []WorkItem, onProgress ProgressFunc) []string
}
