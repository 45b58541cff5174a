package ui

import (
	"fmt"
	"io"
)

// PrintBanner writes the startup banner. Callers skip it when stdin is not a
// terminal so piped sessions stay clean.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprintf(w, "%s %s\n", TitleStyle.Render("gosh"), MutedStyle.Render(version))
	fmt.Fprintln(w, MutedStyle.Render("type 'exit' or press Ctrl-D to quit"))
}
