// Package loader reads syntax trees and fixity tables produced by the
// external parser. Trees arrive as JSON (see the ast package wire
// format); the loader is the only seam between this tool and the parser
// that produced the tree.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/telemetry"
)

// Loader loads syntax trees and fixity tables from disk or memory.
type Loader struct{}

// New creates a Loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and decodes a syntax tree file.
func (l *Loader) Load(ctx context.Context, filename string) (*ast.Module, error) {
	timer := telemetry.FromContext(ctx).Start("load " + filename)
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", filename, err)
	}
	return l.loadBytes(filename, data)
}

// LoadBytes decodes a syntax tree from memory. The filename is used in
// error messages only.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*ast.Module, error) {
	timer := telemetry.FromContext(ctx).Start("load " + filename)
	defer timer.End()

	return l.loadBytes(filename, data)
}

func (l *Loader) loadBytes(filename string, data []byte) (*ast.Module, error) {
	mod, err := ast.DecodeModule(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", filename, err)
	}
	return mod, nil
}

// LoadFixities reads and decodes an operator fixity table.
func (l *Loader) LoadFixities(ctx context.Context, filename string) (ast.Fixities, error) {
	timer := telemetry.FromContext(ctx).Start("load fixities " + filename)
	defer timer.End()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", filename, err)
	}

	fixities, err := ast.DecodeFixities(data)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", filename, err)
	}
	return fixities, nil
}
