// Package conso renders structured log records into human-readable terminal
// output through a pluggable reporter pipeline.
//
// A log call produces an immutable LogRecord (type, level, arguments,
// optional tag/title/box metadata) that a Conso instance routes to its
// reporters in registration order. Two reporters ship with the package:
//
//   - BasicReporter writes plain bracketed text and is the default in CI and
//     on non-interactive streams.
//   - FancyReporter adds colors, type icons, severity badges, bordered boxes
//     and a width-aware two-column layout for wide terminals.
//
// Both route errors and warnings (level < 2) to the error stream and
// everything else to standard output. Error arguments that carry a stack
// trace or a cause chain, such as gitlab.com/tozd/go/errors values, expand
// into an indented multi-line form with colorized frames and recursively
// formatted causes.
//
// Package-level functions log through a default instance whose reporter is
// chosen from the environment:
//
//	conso.Info("listening on", addr)
//	conso.Error(err)
//	conso.Box("release `v1.2.0` published")
//
// Terminal capabilities (color and unicode glyph support) are detected once
// and injected into reporters at construction, so tests can pin either state
// with style.New.
package conso
