package conso

import (
	"io"
	"strings"
	"time"

	"github.com/dianlight/conso/box"
)

// LogLevel is an integer severity; lower values are more severe.
type LogLevel int

// Log levels. Fatal and Error share level 0.
const (
	LevelSilent  LogLevel = -1
	LevelFatal   LogLevel = 0
	LevelError   LogLevel = 0
	LevelWarn    LogLevel = 1
	LevelLog     LogLevel = 2
	LevelInfo    LogLevel = 3
	LevelDebug   LogLevel = 4
	LevelTrace   LogLevel = 5
	LevelVerbose LogLevel = 999
)

// LogType is the category tag of a record.
type LogType string

const (
	TypeSilent  LogType = "silent"
	TypeFatal   LogType = "fatal"
	TypeError   LogType = "error"
	TypeWarn    LogType = "warn"
	TypeLog     LogType = "log"
	TypeInfo    LogType = "info"
	TypeSuccess LogType = "success"
	TypeFail    LogType = "fail"
	TypeReady   LogType = "ready"
	TypeStart   LogType = "start"
	TypeBox     LogType = "box"
	TypeDebug   LogType = "debug"
	TypeTrace   LogType = "trace"
	TypeVerbose LogType = "verbose"
)

// typeLevels maps each log type to its default severity.
var typeLevels = map[LogType]LogLevel{
	TypeSilent:  LevelSilent,
	TypeFatal:   LevelFatal,
	TypeError:   LevelError,
	TypeWarn:    LevelWarn,
	TypeLog:     LevelLog,
	TypeInfo:    LevelInfo,
	TypeSuccess: LevelInfo,
	TypeFail:    LevelInfo,
	TypeReady:   LevelInfo,
	TypeStart:   LevelInfo,
	TypeBox:     LevelInfo,
	TypeDebug:   LevelDebug,
	TypeTrace:   LevelTrace,
	TypeVerbose: LevelVerbose,
}

// LogRecord is the immutable snapshot handed to reporters. It is created once
// per log call and only read afterwards; reporters must not retain it beyond
// the call.
type LogRecord struct {
	Type  LogType
	Level LogLevel
	Tag   string
	Args  []any
	Date  time.Time

	// Box metadata, used by TypeBox records.
	Title string
	Style *box.Style

	// Badge forces or suppresses badge rendering when set; nil means the
	// severity decides.
	Badge *bool

	// Icon overrides the glyph for types without a table entry.
	Icon string
}

// FormatOptions carries the resolved formatting parameters for one call.
type FormatOptions struct {
	// Columns is the terminal width in character cells, 0 if unknown.
	Columns int

	// Date selects whether a formatted timestamp is rendered.
	Date bool

	// ErrorLevel is the recursion depth for nested error causes.
	ErrorLevel int
}

// LogContext carries format options and target streams into a reporter call.
type LogContext struct {
	Options FormatOptions
	Stdout  io.Writer
	Stderr  io.Writer
}

// Reporter turns records into bytes on an output stream. FormatRecord is the
// pure, independently testable part; Log adds stream selection and the
// trailing newline.
type Reporter interface {
	FormatRecord(rec *LogRecord, opts FormatOptions) string
	Log(rec *LogRecord, ctx *LogContext) error
}

func bracket(s string) string {
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}

func filterAndJoin(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
