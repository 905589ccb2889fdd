// Package format renders lists and colored status lines for CLI output.
package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color names accepted by Colorize.
const (
	Red   = "red"
	Green = "green"
	Blue  = "blue"
)

var colorCodes = map[string]string{
	Red:   "\033[31m",
	Green: "\033[32m",
	Blue:  "\033[34m",
}

// List renders items as a bracketed, single-quoted list: ['a', 'b'].
// An empty slice renders as [].
func List(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("'%s'", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Color wraps s in ANSI codes for color unconditionally. Unknown color
// names return s unchanged.
func Color(color, s string) string {
	code, ok := colorCodes[color]
	if !ok {
		return s
	}
	return code + s + "\033[0m"
}

// Colorize wraps s in ANSI codes for color if w is a terminal, otherwise
// returns s unchanged.
func Colorize(w io.Writer, color, s string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return Color(color, s)
	}
	return s
}
