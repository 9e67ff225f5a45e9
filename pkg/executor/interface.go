package executor

import "context"

// Executor runs external commands and returns their stdout
type Executor interface {
	// ExecuteWithInput feeds input to the command's stdin.
	ExecuteWithInput(ctx context.Context, input, name string, args ...string) (string, error)
}
