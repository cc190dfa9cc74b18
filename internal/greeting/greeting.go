// Package greeting builds the greeting served on the root route.
package greeting

import (
	"unicode"
	"unicode/utf8"

	"github.com/ais-poc/greeter/internal/platform/colorize"
)

// Message is the greeting template served by the root route.
const Message = "Hello world from the Advance Internet Security project proof of concept!"

// CapitalizeFirst upper-cases the first rune of s and leaves the rest untouched.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// Text returns the capitalised greeting without colour codes.
func Text() string {
	return CapitalizeFirst(Message)
}

// Body returns the response body for the root route: the capitalised greeting
// wrapped in green ANSI escape codes.
func Body() string {
	return colorize.ForceGreen(Text())
}
