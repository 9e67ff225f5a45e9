package transform

import "errors"

var (
	// ErrRateLimited wraps provider errors reporting 429 or exhausted quota
	ErrRateLimited = errors.New("transform: rate limited")
	// ErrEmptyResponse indicates the provider returned no text
	ErrEmptyResponse = errors.New("transform: empty response")
	// ErrNoAPIKeys is returned by NewGemini without any key
	ErrNoAPIKeys = errors.New("transform: at least one API key is required")
	// ErrUnknownProvider is returned by NewFromConfig for an unsupported provider name
	ErrUnknownProvider = errors.New("transform: unknown provider")
)
