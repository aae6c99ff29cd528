package style

import (
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Detect builds a Styler from the current process environment. The result is
// intended to be created once and treated as read-only for the process
// lifetime.
func Detect() *Styler {
	return New(colorSupported(), unicodeSupported())
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsCI reports whether the process appears to run under a CI service.
func IsCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "BUILDKITE", "DRONE"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// TerminalColumns returns the terminal width in character cells, or 80 when
// the size cannot be determined.
func TerminalColumns() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func colorSupported() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTerminal() || strings.Contains(os.Getenv("TERM"), "color")
}

func unicodeSupported() bool {
	if runtime.GOOS == "windows" {
		// Windows Terminal and modern terminal emulators handle glyphs;
		// the legacy console does not.
		return os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") == "vscode"
	}
	return os.Getenv("TERM") != "linux"
}
