package scheduler

import "errors"

var (
	// ErrInvalidConcurrency is returned by New when Options.Concurrency is not positive
	ErrInvalidConcurrency = errors.New("scheduler: concurrency must be positive")
	// ErrInvalidTimeout is returned by New for a negative Options.ItemTimeout
	ErrInvalidTimeout = errors.New("scheduler: item timeout must not be negative")
	// ErrNilTransformer is returned by New without a Transformer
	ErrNilTransformer = errors.New("scheduler: transformer is required")
	// ErrTransformPanicked marks an item whose Transform call panicked
	ErrTransformPanicked = errors.New("scheduler: transform panicked")
)
