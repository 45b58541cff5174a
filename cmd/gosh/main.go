package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/gYonder/gosh/internal/build"
	"github.com/gYonder/gosh/internal/config"
	"github.com/gYonder/gosh/internal/session"
	"github.com/gYonder/gosh/internal/shell"
	"github.com/gYonder/gosh/internal/ui"

	// Register builtins
	_ "github.com/gYonder/gosh/internal/commands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Render("Error loading config:"), err)
		os.Exit(1)
	}

	sess := session.New()
	sess.Prompt = cfg.Prompt
	sess.HistoryFile = cfg.HistoryFile
	sess.HistoryLimit = cfg.HistoryLimit
	sess.Interactive = term.IsTerminal(int(os.Stdin.Fd()))

	if sess.Interactive {
		ui.PrintBanner(os.Stdout, build.Version)
	}

	sh, err := shell.New(sess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Render("Failed to start shell:"), err)
		os.Exit(1)
	}

	sh.Run()
}
