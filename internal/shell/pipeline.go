package shell

import (
	"fmt"
	"strings"
)

// Redirection binds a target file descriptor (1 or 2) to a path.
type Redirection struct {
	Path   string
	FD     int
	Append bool
}

// Segment is a single command in a pipeline with its local redirections.
// Args is the full argv; Args[0] is the command name.
type Segment struct {
	Args   []string
	Redirs []Redirection
}

func (s *Segment) CommandName() string {
	return s.Args[0]
}

// Pipeline represents a parsed command line: one or more segments connected
// by pipes.
type Pipeline struct {
	Segments []*Segment
}

// redirOps maps operator token types to the fd they bind and the open mode.
var redirOps = map[TokenType]struct {
	fd     int
	append bool
}{
	TokenRedirectOut:       {fd: 1},
	TokenRedirectAppend:    {fd: 1, append: true},
	TokenRedirectErr:       {fd: 2},
	TokenRedirectErrAppend: {fd: 2, append: true},
}

// ParsePipeline parses a command line into a Pipeline. Returns (nil, nil)
// for a blank line.
func ParsePipeline(line string) (*Pipeline, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil, nil
	}

	pipeline := &Pipeline{}
	for _, segTokens := range SplitByPipe(tokens) {
		if len(segTokens) == 0 {
			return nil, fmt.Errorf("syntax error near unexpected token `|'")
		}
		seg, err := parseSegment(segTokens)
		if err != nil {
			return nil, err
		}
		pipeline.Segments = append(pipeline.Segments, seg)
	}
	return pipeline, nil
}

// parseSegment pulls every redirection operator and its target out of the
// token stream; whatever remains is the argv.
func parseSegment(tokens []Token) (*Segment, error) {
	seg := &Segment{}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Type {
		case TokenWord:
			seg.Args = append(seg.Args, tok.Value)

		case TokenRedirectOut, TokenRedirectAppend, TokenRedirectErr, TokenRedirectErrAppend:
			if i+1 >= len(tokens) || tokens[i+1].Type != TokenWord {
				return nil, fmt.Errorf("no output file specified for redirection")
			}
			op := redirOps[tok.Type]
			seg.Redirs = append(seg.Redirs, Redirection{
				FD:     op.fd,
				Path:   tokens[i+1].Value,
				Append: op.append,
			})
			i++

		case TokenRedirectIn:
			return nil, fmt.Errorf("syntax error: input redirection '<' is not supported")

		default:
			return nil, fmt.Errorf("syntax error near unexpected token `%s'", tok.Value)
		}
	}

	if len(seg.Args) == 0 {
		return nil, fmt.Errorf("syntax error: empty command")
	}
	return seg, nil
}
