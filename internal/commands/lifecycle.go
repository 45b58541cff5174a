package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gYonder/gosh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "exit",
		Description: "Exit the shell",
		Run:         exitCmd,
	})
}

// exitCmd terminates the shell process. It always runs in-process, even
// inside a pipeline, so `exit` anywhere ends the session.
func exitCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	status, err := exitStatus(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "exit: %s: numeric argument required\n", args[0])
		os.Exit(1)
	}
	os.Exit(status)
	return nil
}

func exitStatus(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return strconv.Atoi(args[0])
}
