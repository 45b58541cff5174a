package shell

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gYonder/gosh/internal/commands"
	"github.com/gYonder/gosh/internal/session"
)

// tabState tracks consecutive TAB presses on an unchanged prefix. It is
// owned by the REPL's completer and reset whenever a line is submitted.
type tabState struct {
	lastPrefix string
	matches    []string
	count      int
}

// Completer provides tab completion for the command word: builtin names
// merged with executables found on PATH. Ambiguous prefixes follow the
// two-TAB protocol: bell first, candidate listing on the second press.
type Completer struct {
	Session *session.Session
	Out     io.Writer
	Prompt  string
	state   tabState
}

var _ readline.AutoCompleter = (*Completer)(nil)

func NewCompleter(s *session.Session, out io.Writer, prompt string) *Completer {
	return &Completer{Session: s, Out: out, Prompt: prompt}
}

// Reset clears the TAB-repeat state. Called after every submitted line.
func (c *Completer) Reset() {
	c.state = tabState{}
}

// Candidates returns the builtin names and PATH executables starting with
// prefix, deduplicated by basename, sorted.
func (c *Completer) Candidates(prefix string) []string {
	seen := make(map[string]bool)
	var matches []string

	for _, name := range commands.Names() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}
	for _, name := range c.Session.ExecutablesWithPrefix(prefix) {
		if !seen[name] {
			seen[name] = true
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)
	return matches
}

// Do implements readline.AutoCompleter. Only the command word is completed.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	if strings.ContainsAny(lineStr, " \t") {
		return nil, 0
	}
	return c.complete(lineStr)
}

func (c *Completer) complete(prefix string) ([][]rune, int) {
	matches := c.Candidates(prefix)

	if prefix != c.state.lastPrefix {
		c.state = tabState{lastPrefix: prefix, matches: matches, count: 1}
	} else {
		c.state.count++
		c.state.matches = matches
	}

	if len(matches) == 0 {
		return nil, 0
	}

	if len(matches) == 1 {
		c.state.count = 0
		return [][]rune{[]rune(matches[0][len(prefix):] + " ")}, len(prefix)
	}

	// Extend to the longest common prefix when it is longer than what was
	// typed; no trailing space, the word is still ambiguous.
	if lcp := longestCommonPrefix(matches); len(lcp) > len(prefix) {
		c.state.count = 0
		return [][]rune{[]rune(lcp[len(prefix):])}, len(prefix)
	}

	if c.state.count == 1 {
		fmt.Fprint(c.Out, "\a")
		return nil, 0
	}

	fmt.Fprintf(c.Out, "\n%s\n%s%s", strings.Join(matches, "  "), c.Prompt, prefix)
	c.state.count = 0
	return nil, 0
}

func longestCommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
