// Package errors provides rendering for formatting diagnostics. It
// separates presentation from the formatter's domain logic, so the same
// diagnostics can be shown as plain text on a terminal or as structured
// JSON for tooling.
package errors

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/robinvdvleuten/elmfmt/formatter"
)

// Formatter renders diagnostics for output.
type Formatter interface {
	// Format renders a single diagnostic.
	Format(d formatter.Diagnostic) string

	// FormatAll renders multiple diagnostics.
	FormatAll(diags []formatter.Diagnostic) string
}

// TextFormatter renders diagnostics as one warning line each, for
// command-line output.
type TextFormatter struct{}

// NewTextFormatter creates a text diagnostic formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format renders a diagnostic as "kind: message".
func (tf *TextFormatter) Format(d formatter.Diagnostic) string {
	return d.Kind.String() + ": " + d.Message
}

// FormatAll renders diagnostics one per line.
func (tf *TextFormatter) FormatAll(diags []formatter.Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = tf.Format(d)
	}
	return strings.Join(lines, "\n")
}

// JSONFormatter renders diagnostics as structured JSON for APIs and
// editor integrations.
type JSONFormatter struct {
	// Indent enables indented output.
	Indent bool
}

// NewJSONFormatter creates a JSON diagnostic formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonDiagnostic struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Format renders a single diagnostic as a JSON object.
func (jf *JSONFormatter) Format(d formatter.Diagnostic) string {
	return jf.marshal(jsonDiagnostic{
		Kind:    d.Kind.String(),
		Subject: d.Subject,
		Message: d.Message,
	})
}

// FormatAll renders diagnostics as {"diagnostics": [...]}.
func (jf *JSONFormatter) FormatAll(diags []formatter.Diagnostic) string {
	out := struct {
		Diagnostics []jsonDiagnostic `json:"diagnostics"`
	}{Diagnostics: make([]jsonDiagnostic, 0, len(diags))}

	for _, d := range diags {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			Kind:    d.Kind.String(),
			Subject: d.Subject,
			Message: d.Message,
		})
	}

	return jf.marshal(out)
}

func (jf *JSONFormatter) marshal(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if jf.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}
