// Package elmfmt renders parsed functional-language module trees back
// into canonical source text.
package elmfmt

import (
	"context"
	"strings"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/formatter"
)

// Format renders a module tree as source text using the default
// formatter configuration, adjusted by opts. Diagnostics report
// non-fatal oddities in the input such as unknown operators or @doc
// tags that match nothing.
func Format(mod *ast.Module, opts ...formatter.Option) (string, []formatter.Diagnostic, error) {
	f := formatter.New(opts...)

	var buf strings.Builder
	diags, err := f.Format(context.Background(), mod, &buf)
	if err != nil {
		return "", diags, err
	}

	return buf.String(), diags, nil
}

// FormatJSON decodes a module tree from its JSON wire form and renders
// it as source text.
func FormatJSON(data []byte, opts ...formatter.Option) (string, []formatter.Diagnostic, error) {
	mod, err := ast.DecodeModule(data)
	if err != nil {
		return "", nil, err
	}

	return Format(mod, opts...)
}
