// Package formatter renders Elm syntax trees back into canonical,
// width-bounded source text.
//
// The formatter walks every syntactic construct of a module and produces
// a layout document (see the pretty package), which is then rendered at
// the configured page width. Formatting is deterministic and idempotent:
// the same tree and configuration always produce the same output, and
// formatting formatted output changes nothing.
//
// Non-fatal problems found along the way (unknown operator fixity,
// unresolvable @doc tags, malformed comment structure) are collected as
// Diagnostics and returned alongside the output rather than aborting the
// pass. The only fatal condition is a defect in the formatter itself: a
// text fragment with an embedded line break reaching the renderer.
package formatter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
	"github.com/robinvdvleuten/elmfmt/telemetry"
)

const (
	// DefaultWidth is the default target page width.
	DefaultWidth = 80

	// DefaultIndentation is the indentation step for nested blocks.
	DefaultIndentation = 4
)

// DiagnosticKind classifies the recoverable problems the formatter can
// surface.
type DiagnosticKind int

const (
	// UnknownFixity means an operator was not found in the fixity table.
	// The formatter falls back to the lowest possible precedence, which
	// forces conservative parenthesization.
	UnknownFixity DiagnosticKind = iota

	// UnknownDocTag means a @doc tag names nothing in the exposing
	// clause. The tag is dropped from the ordering.
	UnknownDocTag

	// MalformedComment means a comment's structure could not be fully
	// understood (e.g. an unterminated code fence). The remainder is
	// treated as literal prose.
	MalformedComment
)

// String returns a stable identifier for the kind, used in text and JSON
// diagnostic output.
func (k DiagnosticKind) String() string {
	switch k {
	case UnknownFixity:
		return "unknown-fixity"
	case UnknownDocTag:
		return "unknown-doc-tag"
	case MalformedComment:
		return "malformed-comment"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal problem encountered while formatting. The
// formatted output is still produced; diagnostics report the caveats.
type Diagnostic struct {
	Kind    DiagnosticKind
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	return d.Message
}

// Formatter formats syntax trees at a configured page width.
type Formatter struct {
	// Width is the target page width. Lines are kept within this width
	// except for single unbreakable tokens wider than the width itself.
	Width int

	// Indentation is the indentation step for broken groups and nested
	// blocks.
	Indentation int

	// Fixities maps operator symbols to precedence and associativity.
	// Operators missing from the table are treated conservatively; a nil
	// table treats every operator that way.
	Fixities ast.Fixities
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithWidth sets the target page width.
func WithWidth(width int) Option {
	return func(f *Formatter) {
		f.Width = width
	}
}

// WithIndentation sets the indentation step.
func WithIndentation(indent int) Option {
	return func(f *Formatter) {
		f.Indentation = indent
	}
}

// WithFixities sets the operator fixity table. The table is read-only
// shared input; the formatter never modifies it.
func WithFixities(fixities ast.Fixities) Option {
	return func(f *Formatter) {
		f.Fixities = fixities
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		Width:       DefaultWidth,
		Indentation: DefaultIndentation,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format formats the module and writes the result to w. The output uses
// "\n" separators, carries no trailing whitespace on any line, and ends
// with a trailing newline.
//
// Diagnostics are returned alongside successful output. An error is
// returned only for a producer contract violation inside the converter
// (see pretty.InvalidTextError) or a failed write.
func (f *Formatter) Format(ctx context.Context, mod *ast.Module, w io.Writer) ([]Diagnostic, error) {
	timer := telemetry.FromContext(ctx).Start("format " + mod.Name)
	defer timer.End()

	conv := newConverter(f)

	convertTimer := timer.Child("convert")
	doc := conv.module(mod)
	convertTimer.End()

	renderTimer := timer.Child("render")
	text, err := pretty.Render(doc, f.Width)
	renderTimer.End()

	if err != nil {
		return conv.diags, fmt.Errorf("formatter: rendering %s: %w", mod.Name, err)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if _, err := io.WriteString(w, text); err != nil {
		return conv.diags, err
	}

	return conv.diags, nil
}

// converter turns syntax tree nodes into layout documents. It owns the
// diagnostics collected during a single formatting pass; a converter is
// used for one pass and discarded.
type converter struct {
	width    int
	indent   int
	fixities ast.Fixities

	diags []Diagnostic

	// seenOps dedupes unknown-fixity diagnostics per operator symbol.
	seenOps map[string]bool
}

func newConverter(f *Formatter) *converter {
	return &converter{
		width:    f.Width,
		indent:   f.Indentation,
		fixities: f.Fixities,
		seenOps:  make(map[string]bool),
	}
}

func (c *converter) diagnose(kind DiagnosticKind, subject, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	})
}
