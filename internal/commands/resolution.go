package commands

import (
	"context"
	"fmt"

	"github.com/gYonder/gosh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "type",
		Description: "Describe how a command name would be resolved",
		Run:         typeCmd,
	})
}

// typeCmd reports whether a name resolves to a builtin or an executable on
// PATH. Builtins shadow externals of the same name, matching what the
// execution engine does.
func typeCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(env.Stdout, "argument required after type command")
		return nil
	}

	name := args[0]
	if _, ok := Get(name); ok {
		fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		return nil
	}
	if path, ok := s.LookPath(name); ok {
		fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
		return nil
	}
	fmt.Fprintf(env.Stdout, "%s: not found\n", name)
	return nil
}
