package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gYonder/gosh/internal/commands"
	"github.com/gYonder/gosh/internal/session"
)

func runBuiltin(t *testing.T, name string, args []string) (stdout, stderr string) {
	t.Helper()
	cmd, ok := commands.Get(name)
	require.True(t, ok, "builtin %q not registered", name)

	var out, errBuf bytes.Buffer
	env := &commands.ExecutionEnv{Stdout: &out, Stderr: &errBuf}
	require.NoError(t, cmd.Run(context.Background(), session.New(), env, args))
	return out.String(), errBuf.String()
}

func TestEcho(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"joins with single spaces", []string{"hello", "world"}, "hello world\n"},
		{"no args prints blank line", nil, "\n"},
		{"single arg", []string{"hi"}, "hi\n"},
		{"preserves inner spacing of one arg", []string{"a  b"}, "a  b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runBuiltin(t, "echo", tt.args)
			assert.Equal(t, tt.want, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestRegistryNames(t *testing.T) {
	names := commands.Names()
	for _, want := range []string{"cd", "echo", "exit", "pwd", "type"} {
		assert.Contains(t, names, want)
	}
	assert.IsIncreasing(t, names)
}
