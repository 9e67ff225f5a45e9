package transform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	input string
	name  string
	args  []string
	out   string
	err   error
}

func (f *fakeExecutor) ExecuteWithInput(_ context.Context, input, name string, args ...string) (string, error) {
	f.input, f.name, f.args = input, name, args
	return f.out, f.err
}

func TestCommandTransform(t *testing.T) {
	exec := &fakeExecutor{out: "  translated text\n"}
	c := NewCommand(exec, "ollama", "run", "llama3")

	out, err := c.Transform(context.Background(), "payload", "the request")
	require.NoError(t, err)
	assert.Equal(t, "translated text", out)
	assert.Equal(t, "the request", exec.input)
	assert.Equal(t, "ollama", exec.name)
	assert.Equal(t, []string{"run", "llama3"}, exec.args)
}

func TestCommandTransformErrors(t *testing.T) {
	boom := errors.New("exit status 1")

	_, err := NewCommand(&fakeExecutor{err: boom}, "x").Transform(context.Background(), "", "r")
	assert.ErrorIs(t, err, boom)

	_, err = NewCommand(&fakeExecutor{out: " \n"}, "x").Transform(context.Background(), "", "r")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}
