package scheduler

import (
	"fmt"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/ygrebnov/errorc"
)

type implScheduler struct {
	client Transformer
	opts   Options
	logger logger.Logger
}

// New creates a Scheduler driving client with at most opts.Concurrency calls in flight
func New(client Transformer, log logger.Logger, opts Options) (Scheduler, error) {
	if client == nil {
		return nil, ErrNilTransformer
	}
	if opts.Concurrency <= 0 {
		return nil, errorc.With(ErrInvalidConcurrency, errorc.String("", fmt.Sprintf("concurrency=%d", opts.Concurrency)))
	}
	if opts.ItemTimeout < 0 {
		return nil, errorc.With(ErrInvalidTimeout, errorc.String("", opts.ItemTimeout.String()))
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &implScheduler{
		client: client,
		opts:   opts,
		logger: log,
	}, nil
}
