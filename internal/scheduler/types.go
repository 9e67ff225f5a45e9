package scheduler

import (
	"fmt"
	"time"
)

// WorkItem is one unit of transformation work.
// SequenceIndex is its position in the submitted batch and addresses its result slot.
type WorkItem struct {
	Payload       string
	SequenceIndex int
	Request       string
}

// Options configures a Scheduler.
type Options struct {
	// Concurrency caps the number of Transform calls in flight. Must be > 0.
	Concurrency int
	// ItemTimeout bounds a single Transform call. Zero means no timeout.
	ItemTimeout time.Duration
}

// DefaultConcurrency is used by callers that leave the limit unset.
const DefaultConcurrency = 10

// FailureMarker is the result recorded for an item whose transformation failed.
func FailureMarker(index int) string {
	return fmt.Sprintf("Error: Failed to translate chunk %d", index)
}

// NewWorkItems pairs each segment with its request, numbering them in order.
func NewWorkItems(segments []string, request func(segment string) string) []WorkItem {
	items := make([]WorkItem, len(segments))
	for i, seg := range segments {
		items[i] = WorkItem{Payload: seg, SequenceIndex: i, Request: request(seg)}
	}
	return items
}
