package transform

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/translate-flow/pkg/executor"
)

// Command transforms by running a local CLI with the request on stdin,
// e.g. `ollama run llama3`. Trimmed stdout is the output.
type Command struct {
	exec executor.Executor
	name string
	args []string
}

func NewCommand(exec executor.Executor, name string, args ...string) *Command {
	return &Command{exec: exec, name: name, args: args}
}

func (c *Command) Transform(ctx context.Context, _ string, request string) (string, error) {
	out, err := c.exec.ExecuteWithInput(ctx, request, c.name, c.args...)
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
