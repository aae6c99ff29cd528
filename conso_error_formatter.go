package conso

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/dianlight/conso/style"
)

// maxCauseDepth bounds recursive cause expansion. Nothing in the error model
// prevents a cycle, so both a depth cap and a visited set guard the walk;
// tripping either cuts the chain with a truncation marker.
const maxCauseDepth = 6

// stackTracer is satisfied by gitlab.com/tozd/go/errors values and anything
// else that records program counters at construction.
type stackTracer interface {
	StackTrace() []uintptr
}

// causer exposes an explicit cause chain, distinct from message wrapping.
type causer interface {
	Cause() error
}

// hasErrorDetail reports whether err carries a stack trace or a cause and so
// deserves the multi-line treatment instead of plain stringification.
func hasErrorDetail(err error) bool {
	if _, ok := err.(stackTracer); ok {
		return true
	}
	_, ok := err.(causer)
	return ok
}

// formatError renders err as message, indented stack frames, and recursively
// expanded causes. Colors come from st; a styler without color support yields
// plain text.
func formatError(st *style.Styler, err error, opts FormatOptions) string {
	seen := make(map[error]struct{})
	return formatErrorLevel(st, err, opts.ErrorLevel, seen)
}

func formatErrorLevel(st *style.Styler, err error, level int, seen map[error]struct{}) string {
	markSeen(seen, err)

	var b strings.Builder
	if level > 0 {
		b.WriteString(strings.Repeat("  ", level))
		b.WriteString(st.Colorize(style.Gray, "[cause]:"))
		b.WriteString(" ")
	}
	b.WriteString(err.Error())

	if frames := stackFrames(err); len(frames) > 0 {
		b.WriteString("\n")
		b.WriteString(formatFrames(st, frames, level))
	}

	cause := errCause(err)
	if cause == nil {
		return b.String()
	}
	if level+1 >= maxCauseDepth || wasSeen(seen, cause) {
		b.WriteString("\n\n")
		b.WriteString(strings.Repeat("  ", level+1))
		b.WriteString(st.Colorize(style.Gray, "[cause truncated]"))
		return b.String()
	}
	b.WriteString("\n\n")
	b.WriteString(formatErrorLevel(st, cause, level+1, seen))
	return b.String()
}

// formatFrames renders stack frames indented by 2*(level+1) spaces, with the
// "at " prefix and the parenthesized locator colorized distinctly.
func formatFrames(st *style.Styler, frames []runtime.Frame, level int) string {
	indent := strings.Repeat("  ", level+1)
	lines := make([]string, 0, len(frames))
	for _, f := range frames {
		if f.File == "" && f.Function == "" {
			continue
		}
		name := f.Function
		if name == "" {
			name = "unknown"
		}
		loc := fmt.Sprintf("%s:%d", f.File, f.Line)
		lines = append(lines, indent+st.Colorize(style.Gray, "at ")+name+" ("+st.Colorize(style.Cyan, loc)+")")
	}
	return strings.Join(lines, "\n")
}

// stackFrames resolves the recorded program counters of err, if any.
func stackFrames(err error) []runtime.Frame {
	tracer, ok := err.(stackTracer)
	if !ok {
		return nil
	}
	pcs := tracer.StackTrace()
	if len(pcs) == 0 {
		return nil
	}
	return resolveFrames(runtime.CallersFrames(pcs))
}

// captureStack records the current call stack, skipping the given number of
// frames above the caller.
func captureStack(skip int) []runtime.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return resolveFrames(runtime.CallersFrames(pcs[:n]))
}

func resolveFrames(frames *runtime.Frames) []runtime.Frame {
	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if f.PC != 0 {
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

func errCause(err error) error {
	c, ok := err.(causer)
	if !ok {
		return nil
	}
	return c.Cause()
}

// The visited set only tracks comparable error values; non-comparable ones
// are still bounded by the depth cap.
func markSeen(seen map[error]struct{}, err error) {
	if reflect.TypeOf(err).Comparable() {
		seen[err] = struct{}{}
	}
}

func wasSeen(seen map[error]struct{}, err error) bool {
	if !reflect.TypeOf(err).Comparable() {
		return false
	}
	_, ok := seen[err]
	return ok
}
