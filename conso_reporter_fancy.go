package conso

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dianlight/conso/box"
	"github.com/dianlight/conso/style"
)

// typeColors is the first step of the color fallback chain.
var typeColors = map[LogType]style.Color{
	TypeInfo:    style.Cyan,
	TypeFail:    style.Red,
	TypeSuccess: style.Green,
	TypeReady:   style.Green,
	TypeStart:   style.Magenta,
}

// levelColors is the second step, keyed by severity.
var levelColors = map[LogLevel]style.Color{
	0: style.Red,
	1: style.Yellow,
	2: style.White,
	3: style.Green,
}

// typeIcons holds the glyphs used on terminals with unicode support.
// TypeLog maps to the empty string on purpose: plain log lines carry no icon.
var typeIcons = map[LogType]string{
	TypeError:   "✖",
	TypeFatal:   "✖",
	TypeFail:    "✖",
	TypeSuccess: "✔",
	TypeReady:   "✔",
	TypeWarn:    "⚠",
	TypeInfo:    "ℹ",
	TypeDebug:   "⚙",
	TypeTrace:   "→",
	TypeStart:   "◐",
	TypeLog:     "",
}

// typeIconsASCII is the fallback glyph set for terminals without unicode
// support.
var typeIconsASCII = map[LogType]string{
	TypeError:   "×",
	TypeFatal:   "×",
	TypeFail:    "×",
	TypeSuccess: "√",
	TypeReady:   "√",
	TypeWarn:    "‼",
	TypeInfo:    "i",
	TypeDebug:   "•",
	TypeTrace:   ">",
	TypeStart:   "o",
	TypeLog:     "",
}

// highlightPattern matches backtick-delimited spans.
var highlightPattern = regexp.MustCompile("`([^`]+)`")

// FancyReporter extends the basic reporter's argument, date and error
// formatting with colors, icons, badges and a width-aware two-column layout.
type FancyReporter struct {
	BasicReporter
	styler *style.Styler
}

// NewFancyReporter creates a colorized reporter. A nil styler means detect
// capabilities from the environment; tests pass an explicit one.
func NewFancyReporter(st *style.Styler) *FancyReporter {
	if st == nil {
		st = style.Detect()
	}
	return &FancyReporter{
		BasicReporter: *NewBasicReporter(),
		styler:        st,
	}
}

// highlight colorizes backtick-delimited spans. The backticks themselves are
// consumed.
func (r *FancyReporter) highlight(s string) string {
	if !strings.ContainsRune(s, '`') {
		return s
	}
	return highlightPattern.ReplaceAllStringFunc(s, func(m string) string {
		return r.styler.Colorize(style.Cyan, strings.Trim(m, "`"))
	})
}

// typeColor resolves the record color through the type table, then the level
// table, then gray. Missing entries never fail.
func (r *FancyReporter) typeColor(rec *LogRecord) style.Color {
	if c, ok := typeColors[rec.Type]; ok {
		return c
	}
	if c, ok := levelColors[rec.Level]; ok {
		return c
	}
	return style.Gray
}

// isBadge resolves the badge flag: an explicit record override wins, else
// errors and warnings render as badges.
func isBadge(rec *LogRecord) bool {
	if rec.Badge != nil {
		return *rec.Badge
	}
	return rec.Level < LevelLog
}

// formatType renders the type segment: an uppercase background badge wrapped
// in blank lines, or a colorized icon, or nothing.
func (r *FancyReporter) formatType(rec *LogRecord) string {
	c := r.typeColor(rec)
	if isBadge(rec) {
		return "\n" + r.styler.Badge(c, " "+strings.ToUpper(string(rec.Type))+" ") + "\n"
	}
	icons := typeIcons
	if !r.styler.UnicodeEnabled() {
		icons = typeIconsASCII
	}
	icon, ok := icons[rec.Type]
	if !ok {
		icon = rec.Icon
		if icon == "" {
			icon = string(rec.Type)
		}
	}
	if icon == "" {
		return ""
	}
	return r.styler.Colorize(c, icon)
}

// FormatRecord produces the final colorized text for rec.
func (r *FancyReporter) FormatRecord(rec *LogRecord, opts FormatOptions) string {
	message := r.formatArgs(r.styler, rec.Args, opts)

	if rec.Type == TypeBox {
		return box.Render(r.styler, r.highlight(message), box.Options{
			Title: r.highlight(rec.Title),
			Style: rec.Style,
		})
	}

	var additional []string
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		additional = strings.Split(message[i+1:], "\n")
		message = message[:i]
	}

	left := filterAndJoin([]string{r.formatType(rec), r.highlight(message)})

	right := rec.Tag
	if opts.Columns >= 80 {
		right = filterAndJoin([]string{rec.Tag, r.formatDate(rec, opts)})
	}

	var line string
	space := opts.Columns - style.VisibleWidth(left) - style.VisibleWidth(right) - 2
	switch {
	case right == "":
		line = left
	case space > 0 && opts.Columns >= 80:
		line = left + strings.Repeat(" ", space) + r.styler.Colorize(style.Gray, right)
	default:
		line = r.styler.Colorize(style.Gray, bracket(right)) + " " + left
	}

	for _, extra := range additional {
		line += "\n" + r.highlight(extra)
	}

	if rec.Type == TypeTrace {
		if frames := captureStack(1); len(frames) > 0 {
			line += "\n" + formatFrames(r.styler, frames, 0)
		}
	}

	return line
}

// Log writes the formatted record to the stream matching its severity.
func (r *FancyReporter) Log(rec *LogRecord, ctx *LogContext) error {
	w := ctx.Stdout
	if rec.Level < LevelLog {
		w = ctx.Stderr
	}
	_, err := fmt.Fprintln(w, r.FormatRecord(rec, ctx.Options))
	return err
}
