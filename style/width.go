package style

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches SGR escape sequences as emitted by Colorize and common
// terminal color libraries.
var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal display columns s occupies.
// Escape sequences are stripped before measuring, so colorized and plain
// renderings of the same text measure the same.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
