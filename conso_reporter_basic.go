package conso

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/k0kubun/pp/v3"

	"github.com/dianlight/conso/style"
)

// BasicReporter renders records as plain bracketed text with no colors or
// icons. It is the default reporter outside interactive terminals and the
// formatting base the fancy reporter builds on.
type BasicReporter struct {
	styler  *style.Styler
	printer *pp.PrettyPrinter
}

// NewBasicReporter creates a plain-text reporter.
func NewBasicReporter() *BasicReporter {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	return &BasicReporter{
		styler:  style.New(false, false),
		printer: printer,
	}
}

// formatArgs interpolates record arguments into a message. A leading string
// containing a format verb is treated printf-style when more arguments
// follow; otherwise arguments are space-joined, with errors that carry stack
// or cause detail expanded by the error formatter and composite values
// pretty-printed.
func (r *BasicReporter) formatArgs(st *style.Styler, args []any, opts FormatOptions) string {
	if len(args) > 1 {
		if f, ok := args[0].(string); ok && strings.ContainsRune(f, '%') {
			return fmt.Sprintf(f, args[1:]...)
		}
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			if hasErrorDetail(v) {
				parts = append(parts, formatError(st, v, opts))
			} else {
				parts = append(parts, v.Error())
			}
		case string:
			parts = append(parts, v)
		default:
			parts = append(parts, r.formatValue(v))
		}
	}
	return strings.Join(parts, " ")
}

// formatValue stringifies a single non-string, non-error argument.
func (r *BasicReporter) formatValue(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return strings.TrimRight(r.printer.Sprint(v), "\n")
	default:
		return fmt.Sprint(v)
	}
}

// formatDate renders the record timestamp when dates are enabled.
func (r *BasicReporter) formatDate(rec *LogRecord, opts FormatOptions) string {
	if !opts.Date || rec.Date.IsZero() {
		return ""
	}
	return rec.Date.Format("15:04:05")
}

// FormatRecord produces the final text for rec without writing it anywhere.
func (r *BasicReporter) FormatRecord(rec *LogRecord, opts FormatOptions) string {
	message := r.formatArgs(r.styler, rec.Args, opts)

	if rec.Type == TypeBox {
		lines := make([]string, 0, 2+strings.Count(message, "\n")+1)
		if rec.Tag != "" {
			lines = append(lines, bracket(rec.Tag))
		}
		if rec.Title != "" {
			lines = append(lines, rec.Title)
		}
		lines = append(lines, strings.Split(message, "\n")...)
		for i, line := range lines {
			lines[i] = " > " + line
		}
		return strings.Join(lines, "\n")
	}

	return filterAndJoin([]string{bracket(string(rec.Type)), bracket(rec.Tag), message})
}

// Log writes the formatted record to the stream matching its severity:
// errors and warnings go to the error stream, everything else to standard
// output. A single newline terminates each write.
func (r *BasicReporter) Log(rec *LogRecord, ctx *LogContext) error {
	w := ctx.Stdout
	if rec.Level < LevelLog {
		w = ctx.Stderr
	}
	_, err := fmt.Fprintln(w, r.FormatRecord(rec, ctx.Options))
	return err
}
