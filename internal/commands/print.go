package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/gYonder/gosh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "echo",
		Description: "Output arguments to standard output",
		Run:         echo,
	})
}

// echo joins its arguments with single spaces and terminates with a newline.
// Quoting has already been consumed by the lexer, so `echo "hello"` and
// `echo hello` are indistinguishable here.
func echo(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	fmt.Fprintln(env.Stdout, strings.Join(args, " "))
	return nil
}
