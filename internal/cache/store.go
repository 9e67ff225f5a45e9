package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrCacheMiss indicates the requested key was not found in cache
var ErrCacheMiss = errors.New("cache miss")

// KeyPrefix namespaces translation entries in a shared store.
const KeyPrefix = "translate:"

// Store holds transformed outputs keyed by request.
type Store interface {
	// Get returns ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Key derives the store key for a request. The request already carries the
// language, tone and segment, so it identifies the output on its own.
func Key(request string) string {
	sum := sha256.Sum256([]byte(request))
	return KeyPrefix + hex.EncodeToString(sum[:])
}
