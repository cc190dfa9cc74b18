// Package colorize wraps text in ANSI SGR colour sequences.
//
// Terminal output goes through go-pretty's text package and therefore honours
// its capability detection (NO_COLOR, TERM=dumb). Payload output, such as an
// HTTP body, uses the Force variants which always embed the escape codes.
package colorize

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

// Blue colours s for terminal display.
func Blue(s string) string {
	return text.FgBlue.Sprint(s)
}

// ForceGreen wraps s in green escape codes regardless of terminal support.
func ForceGreen(s string) string {
	return Force(text.FgGreen, s)
}

// Force wraps s in the escape sequence of c followed by a reset.
func Force(c text.Color, s string) string {
	return c.EscapeSeq() + s + text.EscapeReset
}
