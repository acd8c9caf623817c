package markup

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colors used by Colorize. Clients may swap entries before calling, e.g.
// for monochrome output.
var (
	TagColor  = color.New(color.FgCyan)
	TextColor = color.New(color.FgWhite)
)

// Colorize pretty-prints a markup fragment to w with colored tags, for
// inspection on a terminal. Lines wider than the terminal are cut; when w
// is not a terminal a width of 65 is assumed.
//
// Colorize is a debugging aid, not part of the conversion semantics.
func Colorize(w io.Writer, fragment string) {
	width := lineWidthFromTerminal()
	for _, line := range strings.Split(Format(fragment), "\n") {
		if len(line) > width {
			line = line[:width]
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "<") {
			TagColor.Fprint(w, line)
		} else {
			TextColor.Fprint(w, line)
		}
		io.WriteString(w, "\n")
	}
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so
// reads the terminal's width.
func lineWidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil || w <= 0 {
		return 65
	}
	if w < 10 {
		return 10
	}
	return w
}
