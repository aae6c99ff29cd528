// Package style provides terminal color application and visible-width
// measurement for strings that may contain ANSI escape sequences.
package style

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a named entry of the fixed 16-color terminal palette.
type Color string

const (
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"
	Gray    Color = "gray"

	BrightRed     Color = "brightRed"
	BrightGreen   Color = "brightGreen"
	BrightYellow  Color = "brightYellow"
	BrightBlue    Color = "brightBlue"
	BrightMagenta Color = "brightMagenta"
	BrightCyan    Color = "brightCyan"
	BrightWhite   Color = "brightWhite"
)

// fgAttrs maps palette names to foreground SGR attributes.
var fgAttrs = map[Color]color.Attribute{
	Black:         color.FgBlack,
	Red:           color.FgRed,
	Green:         color.FgGreen,
	Yellow:        color.FgYellow,
	Blue:          color.FgBlue,
	Magenta:       color.FgMagenta,
	Cyan:          color.FgCyan,
	White:         color.FgWhite,
	Gray:          color.FgHiBlack,
	BrightRed:     color.FgHiRed,
	BrightGreen:   color.FgHiGreen,
	BrightYellow:  color.FgHiYellow,
	BrightBlue:    color.FgHiBlue,
	BrightMagenta: color.FgHiMagenta,
	BrightCyan:    color.FgHiCyan,
	BrightWhite:   color.FgHiWhite,
}

// bgAttrs maps palette names to background SGR attributes.
var bgAttrs = map[Color]color.Attribute{
	Black:         color.BgBlack,
	Red:           color.BgRed,
	Green:         color.BgGreen,
	Yellow:        color.BgYellow,
	Blue:          color.BgBlue,
	Magenta:       color.BgMagenta,
	Cyan:          color.BgCyan,
	White:         color.BgWhite,
	Gray:          color.BgHiBlack,
	BrightRed:     color.BgHiRed,
	BrightGreen:   color.BgHiGreen,
	BrightYellow:  color.BgHiYellow,
	BrightBlue:    color.BgHiBlue,
	BrightMagenta: color.BgHiMagenta,
	BrightCyan:    color.BgHiCyan,
	BrightWhite:   color.BgHiWhite,
}

const ansiReset = "\x1b[0m"

// Styler applies colors according to capability flags fixed at construction.
// A Styler is read-only after creation and safe for concurrent use.
type Styler struct {
	color   bool
	unicode bool
}

// New creates a Styler with explicit capability flags. Tests use this to pin
// both capability states deterministically.
func New(colorEnabled, unicodeEnabled bool) *Styler {
	return &Styler{color: colorEnabled, unicode: unicodeEnabled}
}

// ColorEnabled reports whether the styler emits ANSI color sequences.
func (st *Styler) ColorEnabled() bool { return st.color }

// UnicodeEnabled reports whether the terminal is expected to render
// non-ASCII glyphs.
func (st *Styler) UnicodeEnabled() bool { return st.unicode }

// Colorize wraps s with the sequence for the named foreground color, or
// returns s unchanged when color output is disabled. Unknown names fall back
// to gray. Embedded resets inside s are followed by a re-application of the
// outer color, so nesting colorized substrings does not bleach the tail of
// the outer span.
func (st *Styler) Colorize(name Color, s string) string {
	if !st.color {
		return s
	}
	attr, ok := fgAttrs[name]
	if !ok {
		attr = fgAttrs[Gray]
	}
	seq := fmt.Sprintf("\x1b[%dm", attr)
	if strings.Contains(s, ansiReset) {
		s = strings.ReplaceAll(s, ansiReset, ansiReset+seq)
	}
	return seq + s + ansiReset
}

// Badge renders s as black text on the named background color. Without color
// support the text passes through unchanged.
func (st *Styler) Badge(name Color, s string) string {
	if !st.color {
		return s
	}
	attr, ok := bgAttrs[name]
	if !ok {
		attr = bgAttrs[Gray]
	}
	return fmt.Sprintf("\x1b[%d;%dm", attr, color.FgBlack) + s + ansiReset
}
