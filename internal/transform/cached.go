package transform

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/translate-flow/internal/cache"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
)

// Cached serves repeated requests from a store. Store failures are logged
// and fall through to the wrapped client; failed transforms are not stored.
type Cached struct {
	next   Client
	store  cache.Store
	logger logger.Logger
}

func NewCached(next Client, store cache.Store, log logger.Logger) *Cached {
	if log == nil {
		log = logger.NewNop()
	}
	return &Cached{next: next, store: store, logger: log}
}

func (c *Cached) Transform(ctx context.Context, payload, request string) (string, error) {
	key := cache.Key(request)

	out, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		return out, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		c.logger.Warn(ctx, "Cache lookup failed: %v", err)
	}

	out, err = c.next.Transform(ctx, payload, request)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, out); err != nil {
		c.logger.Warn(ctx, "Cache store failed: %v", err)
	}
	return out, nil
}
