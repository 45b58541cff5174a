package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gYonder/gosh/internal/session"
)

// Shell is the main REPL loop.
type Shell struct {
	Session   *session.Session
	RL        *readline.Instance
	completer *Completer
}

// New creates a Shell reading from the controlling terminal.
func New(sess *session.Session) (*Shell, error) {
	completer := NewCompleter(sess, os.Stdout, sess.Prompt)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            sess.Prompt,
		HistoryFile:       sess.HistoryFile,
		HistoryLimit:      sess.HistoryLimit,
		HistorySearchFold: true,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		Session:   sess,
		RL:        rl,
		completer: completer,
	}, nil
}

// Run starts the REPL loop. It returns when the input reaches EOF; lines are
// executed strictly serially, each fully reaped before the next prompt.
func (sh *Shell) Run() {
	defer sh.RL.Close()

	ctx := context.Background()

	for {
		line, err := sh.RL.Readline()
		sh.completer.Reset()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF or Ctrl+D
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		pipeline, err := ParsePipeline(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if pipeline == nil {
			continue
		}

		if err := pipeline.Execute(ctx, sh.Session); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}
