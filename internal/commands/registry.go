package commands

import (
	"context"
	"io"
	"sort"

	"github.com/gYonder/gosh/internal/session"
)

// ExecutionEnv carries the streams a command runs against. Redirections and
// pipes swap these; the process-level os.Stdin/Stdout/Stderr are never
// reassigned.
type ExecutionEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Command struct {
	Run         func(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error
	Name        string
	Description string
}

var Registry = make(map[string]*Command)

func Register(cmd *Command) {
	Registry[cmd.Name] = cmd
}

func Get(name string) (*Command, bool) {
	cmd, ok := Registry[name]
	return cmd, ok
}

// Names returns all registered builtin names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
