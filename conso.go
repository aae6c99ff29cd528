package conso

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/dianlight/conso/box"
	"github.com/dianlight/conso/style"
)

// Conso routes log records to an ordered list of reporters. Dispatch is
// serialized per instance, so successive writes to one stream appear in call
// order. One reporter failing or panicking never prevents the remaining
// reporters from running.
type Conso struct {
	mu        sync.Mutex
	level     LogLevel
	tag       string
	reporters []Reporter
	stdout    io.Writer
	stderr    io.Writer
	fmtOpts   FormatOptions
	paused    bool
	queue     []*LogRecord
	events    *eventProcessor
}

// Option configures a Conso instance at construction.
type Option func(*Conso)

// WithLevel sets the minimum severity that gets dispatched.
func WithLevel(level LogLevel) Option {
	return func(c *Conso) { c.level = level }
}

// WithReporters replaces the default reporter selection.
func WithReporters(reporters ...Reporter) Option {
	return func(c *Conso) { c.reporters = reporters }
}

// WithStdout redirects the standard output stream.
func WithStdout(w io.Writer) Option {
	return func(c *Conso) { c.stdout = w }
}

// WithStderr redirects the error stream.
func WithStderr(w io.Writer) Option {
	return func(c *Conso) { c.stderr = w }
}

// WithFormatOptions overrides the detected format options.
func WithFormatOptions(opts FormatOptions) Option {
	return func(c *Conso) { c.fmtOpts = opts }
}

// New creates a logger. Without WithReporters the reporter is chosen from the
// environment: fancy on an interactive terminal outside CI, basic otherwise.
func New(opts ...Option) *Conso {
	c := &Conso{
		level:  LevelInfo,
		stdout: os.Stdout,
		stderr: os.Stderr,
		fmtOpts: FormatOptions{
			Columns: style.TerminalColumns(),
			Date:    true,
		},
		events: newEventProcessor(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.reporters) == 0 {
		if style.IsTerminal() && !style.IsCI() {
			c.reporters = []Reporter{NewFancyReporter(nil)}
		} else {
			c.reporters = []Reporter{NewBasicReporter()}
		}
	}
	return c
}

// WithTag returns a copy of the logger whose records carry the given tag.
// The copy shares reporters, streams and callback subscriptions.
func (c *Conso) WithTag(tag string) *Conso {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Conso{
		level:     c.level,
		tag:       tag,
		reporters: append([]Reporter(nil), c.reporters...),
		stdout:    c.stdout,
		stderr:    c.stderr,
		fmtOpts:   c.fmtOpts,
		events:    c.events,
	}
}

// SetLevel changes the minimum dispatched severity.
func (c *Conso) SetLevel(level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// Level returns the minimum dispatched severity.
func (c *Conso) Level() LogLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// SetReporters replaces the reporter list.
func (c *Conso) SetReporters(reporters ...Reporter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reporters = reporters
}

// AddReporter appends a reporter; it runs after the existing ones.
func (c *Conso) AddReporter(r Reporter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reporters = append(c.reporters, r)
}

// RemoveReporter removes a previously added reporter by identity.
func (c *Conso) RemoveReporter(r Reporter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.reporters[:0]
	for _, existing := range c.reporters {
		if existing != r {
			kept = append(kept, existing)
		}
	}
	c.reporters = kept
}

// Pause queues records instead of dispatching them until Resume is called.
func (c *Conso) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume replays queued records in their original order and restores
// immediate dispatch.
func (c *Conso) Resume() {
	c.mu.Lock()
	c.paused = false
	queued := c.queue
	c.queue = nil
	for _, rec := range queued {
		c.writeLocked(rec)
	}
	c.mu.Unlock()
	for _, rec := range queued {
		c.events.emit(rec)
	}
}

// Fatal logs at the highest severity. The library never exits the process;
// that decision belongs to the caller.
func (c *Conso) Fatal(args ...any)   { c.logType(TypeFatal, args) }
func (c *Conso) Error(args ...any)   { c.logType(TypeError, args) }
func (c *Conso) Warn(args ...any)    { c.logType(TypeWarn, args) }
func (c *Conso) Log(args ...any)     { c.logType(TypeLog, args) }
func (c *Conso) Info(args ...any)    { c.logType(TypeInfo, args) }
func (c *Conso) Success(args ...any) { c.logType(TypeSuccess, args) }
func (c *Conso) Fail(args ...any)    { c.logType(TypeFail, args) }
func (c *Conso) Ready(args ...any)   { c.logType(TypeReady, args) }
func (c *Conso) Start(args ...any)   { c.logType(TypeStart, args) }
func (c *Conso) Debug(args ...any)   { c.logType(TypeDebug, args) }
func (c *Conso) Trace(args ...any)   { c.logType(TypeTrace, args) }
func (c *Conso) Verbose(args ...any) { c.logType(TypeVerbose, args) }

// Box renders args inside a bordered box with the default style.
func (c *Conso) Box(args ...any) { c.logType(TypeBox, args) }

// BoxStyled renders args inside a bordered box with a title and an explicit
// style.
func (c *Conso) BoxStyled(title string, st *box.Style, args ...any) {
	rec := c.newRecord(TypeBox, args)
	rec.Title = title
	rec.Style = st
	c.dispatch(rec)
}

func (c *Conso) logType(t LogType, args []any) {
	c.dispatch(c.newRecord(t, args))
}

func (c *Conso) newRecord(t LogType, args []any) *LogRecord {
	return &LogRecord{
		Type:  t,
		Level: typeLevels[t],
		Tag:   c.tag,
		Args:  args,
		Date:  time.Now(),
	}
}

func (c *Conso) dispatch(rec *LogRecord) {
	c.mu.Lock()
	if rec.Level > c.level {
		c.mu.Unlock()
		return
	}
	if c.paused {
		c.queue = append(c.queue, rec)
		c.mu.Unlock()
		return
	}
	c.writeLocked(rec)
	c.mu.Unlock()
	c.events.emit(rec)
}

// writeLocked runs every reporter for rec. Callers hold c.mu.
func (c *Conso) writeLocked(rec *LogRecord) {
	ctx := &LogContext{
		Options: c.fmtOpts,
		Stdout:  c.stdout,
		Stderr:  c.stderr,
	}
	for _, r := range c.reporters {
		safeLog(r, rec, ctx)
	}
}

// safeLog isolates a reporter failure so the remaining reporters still run.
func safeLog(r Reporter, rec *LogRecord, ctx *LogContext) {
	defer func() {
		_ = recover()
	}()
	_ = r.Log(rec, ctx)
}

// defaultLogger backs the package-level logging functions.
var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// Default returns the package-level logger.
func Default() *Conso {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(c *Conso) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = c
}

func Fatal(args ...any)   { Default().Fatal(args...) }
func Error(args ...any)   { Default().Error(args...) }
func Warn(args ...any)    { Default().Warn(args...) }
func Log(args ...any)     { Default().Log(args...) }
func Info(args ...any)    { Default().Info(args...) }
func Success(args ...any) { Default().Success(args...) }
func Fail(args ...any)    { Default().Fail(args...) }
func Ready(args ...any)   { Default().Ready(args...) }
func Start(args ...any)   { Default().Start(args...) }
func Debug(args ...any)   { Default().Debug(args...) }
func Trace(args ...any)   { Default().Trace(args...) }
func Box(args ...any)     { Default().Box(args...) }
