package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/gYonder/gosh/internal/commands"
	"github.com/gYonder/gosh/internal/session"
)

// resolved is the builtin-or-external tag for one stage. Resolution happens
// once per stage, before anything is spawned.
type resolved struct {
	builtin *commands.Command
	path    string
}

// Execute runs the pipeline to completion. The shell's own std streams are
// never reassigned; stages run against injected ExecutionEnvs.
func (p *Pipeline) Execute(ctx context.Context, sess *session.Session) error {
	if p == nil || len(p.Segments) == 0 {
		return nil
	}

	// Resolve every command upfront. An unknown name anywhere aborts the
	// whole pipeline before any file is opened or process spawned.
	cmds := make([]resolved, len(p.Segments))
	for i, seg := range p.Segments {
		name := seg.CommandName()
		if cmd, ok := commands.Get(name); ok {
			cmds[i].builtin = cmd
			continue
		}
		if path, ok := sess.LookPath(name); ok {
			cmds[i].path = path
			continue
		}
		return fmt.Errorf("%s: command not found", name)
	}

	if len(p.Segments) == 1 {
		return p.executeSingle(ctx, sess, cmds[0], p.Segments[0])
	}
	return p.executePipeline(ctx, sess, cmds)
}

// executeSingle runs a lone command with its redirections bound.
func (p *Pipeline) executeSingle(ctx context.Context, sess *session.Session, cmd resolved, seg *Segment) error {
	env := stdEnv()
	var closers []io.Closer
	if err := bindRedirections(seg, env, &closers); err != nil {
		closeAll(closers)
		return err
	}
	defer closeAll(closers)

	return runStage(ctx, sess, cmd, seg, env)
}

// executePipeline wires n-1 pipes between the stages and runs them all
// concurrently. Each stage owns its pipe ends and redirection files and
// releases them the moment it finishes, so downstream stages see EOF as soon
// as their producer is done.
func (p *Pipeline) executePipeline(ctx context.Context, sess *session.Session, cmds []resolved) error {
	n := len(p.Segments)

	envs := make([]*commands.ExecutionEnv, n)
	for i := range envs {
		envs[i] = stdEnv()
	}

	stageClosers := make([][]io.Closer, n)
	failAll := func() {
		for i := range stageClosers {
			closeAll(stageClosers[i])
		}
	}

	for i := 0; i < n-1; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			failAll()
			return fmt.Errorf("failed to create pipe: %v", err)
		}
		envs[i].Stdout = pw
		envs[i+1].Stdin = pr
		stageClosers[i] = append(stageClosers[i], pw)
		stageClosers[i+1] = append(stageClosers[i+1], pr)
	}

	// Per-stage redirections override the pipe ends for that fd. The
	// displaced pipe writer stays in the stage's closer set so the reader
	// still gets EOF.
	for i, seg := range p.Segments {
		if err := bindRedirections(seg, envs[i], &stageClosers[i]); err != nil {
			failAll()
			return err
		}
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer closeAll(stageClosers[idx])
			errs[idx] = runStage(ctx, sess, cmds[idx], p.Segments[idx], envs[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func stdEnv() *commands.ExecutionEnv {
	return &commands.ExecutionEnv{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// runStage dispatches one stage. Builtins run in this process against the
// injected streams; externals spawn a child with them.
func runStage(ctx context.Context, sess *session.Session, cmd resolved, seg *Segment, env *commands.ExecutionEnv) error {
	if cmd.builtin != nil {
		return cmd.builtin.Run(ctx, sess, env, seg.Args[1:])
	}
	return runExternal(ctx, cmd.path, seg, env)
}

// runExternal spawns the resolved executable and waits for it. The child's
// exit status is not surfaced; only failures to spawn are.
func runExternal(ctx context.Context, path string, seg *Segment, env *commands.ExecutionEnv) error {
	c := exec.CommandContext(ctx, path, seg.Args[1:]...)
	c.Args[0] = seg.CommandName() // argv[0] as typed, not the resolved path
	c.Stdin = env.Stdin
	c.Stdout = env.Stdout
	c.Stderr = env.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("Error executing %s: %v", seg.CommandName(), err)
	}
	return nil
}
