package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gYonder/gosh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "cd",
		Description: "Change the working directory",
		Run:         cd,
	})
	Register(&Command{
		Name:        "pwd",
		Description: "Print the working directory",
		Run:         pwd,
	})
}

// cd changes the cwd of the shell process itself, so it takes effect for
// every later command regardless of where in a pipeline it ran.
func cd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(env.Stderr, "cd: missing argument")
		return nil
	}

	target := args[0]
	if target == "~" {
		target = s.Home()
	}

	if err := os.Chdir(target); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(env.Stderr, "cd: %s: No such file or directory\n", args[0])
		case errors.Is(err, fs.ErrPermission):
			fmt.Fprintf(env.Stderr, "cd: %s: Permission denied\n", args[0])
		default:
			fmt.Fprintf(env.Stderr, "cd: %s: %v\n", args[0], err)
		}
	}
	return nil
}

func pwd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("pwd: %w", err)
	}
	fmt.Fprintln(env.Stdout, wd)
	return nil
}
