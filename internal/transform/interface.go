package transform

import "context"

// Client performs one transformation of a payload, driven by request.
// Implementations make a single attempt; retries belong to the caller.
type Client interface {
	Transform(ctx context.Context, payload, request string) (string, error)
}
