package shell

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gYonder/gosh/internal/commands"
)

// openRedirect opens the target of a single redirection. Truncate mode
// creates or empties the file; append mode creates or extends it. File modes
// follow the process umask.
func openRedirect(r Redirection) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if r.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(r.Path, flags, 0o666)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%s: %v", r.Path, pathErr.Err)
		}
		return nil, fmt.Errorf("%s: %v", r.Path, err)
	}
	return f, nil
}

// bindRedirections opens every redirection of a segment and swaps the
// matching stream in env. When two redirections name the same fd the later
// one wins, though the earlier target is still created. Opened files are
// appended to closers; on error the caller owns closing what was already
// recorded.
func bindRedirections(seg *Segment, env *commands.ExecutionEnv, closers *[]io.Closer) error {
	for _, r := range seg.Redirs {
		f, err := openRedirect(r)
		if err != nil {
			return err
		}
		*closers = append(*closers, f)
		switch r.FD {
		case 1:
			env.Stdout = f
		case 2:
			env.Stderr = f
		}
	}
	return nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		c.Close()
	}
}
