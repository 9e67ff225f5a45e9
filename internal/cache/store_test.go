package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	k := Key("Translate the text below into English.\n\nhello")

	assert.True(t, strings.HasPrefix(k, KeyPrefix))
	assert.Len(t, k, len(KeyPrefix)+64)
	assert.Equal(t, k, Key("Translate the text below into English.\n\nhello"))
	assert.NotEqual(t, k, Key("Translate the text below into English.\n\nhello!"))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	missesBefore := testutil.ToFloat64(CacheMisses)
	_, err := s.Get(ctx, "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, missesBefore+1, testutil.ToFloat64(CacheMisses))

	require.NoError(t, s.Set(ctx, "k", "v"))
	hitsBefore := testutil.ToFloat64(CacheHits)
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(CacheHits))

	require.NoError(t, s.Set(ctx, "k", "v2"))
	got, _ = s.Get(ctx, "k")
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, s.Len())
}
