package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyentantai21042004/translate-flow/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	calls int
	out   string
	err   error
}

func (c *countingClient) Transform(_ context.Context, payload, _ string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.out + payload, nil
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, error) { return "", errors.New("connection refused") }
func (brokenStore) Set(context.Context, string, string) error    { return errors.New("connection refused") }

func TestCachedServesRepeatedRequests(t *testing.T) {
	next := &countingClient{out: "T:"}
	c := NewCached(next, cache.NewMemoryStore(), nil)
	ctx := context.Background()

	first, err := c.Transform(ctx, "a", "req-a")
	require.NoError(t, err)
	second, err := c.Transform(ctx, "a", "req-a")
	require.NoError(t, err)

	assert.Equal(t, "T:a", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls)

	_, err = c.Transform(ctx, "b", "req-b")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedDoesNotStoreFailures(t *testing.T) {
	boom := errors.New("upstream down")
	next := &countingClient{err: boom}
	store := cache.NewMemoryStore()
	c := NewCached(next, store, nil)

	_, err := c.Transform(context.Background(), "a", "req")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Len())
}

func TestCachedStoreFailureFallsThrough(t *testing.T) {
	next := &countingClient{out: "T:"}
	c := NewCached(next, brokenStore{}, nil)

	out, err := c.Transform(context.Background(), "a", "req")
	require.NoError(t, err)
	assert.Equal(t, "T:a", out)
	assert.Equal(t, 1, next.calls)
}
