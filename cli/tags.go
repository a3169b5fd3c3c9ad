package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/errors"
	"github.com/robinvdvleuten/elmfmt/formatter"
	"github.com/robinvdvleuten/elmfmt/loader"
)

type TagsCmd struct {
	File FileOrStdin `help:"Parsed module tree as JSON (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	JSON bool        `help:"Emit diagnostics as JSON instead of text."`
}

func (cmd *TagsCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()
	ldr := loader.New()

	var mod *ast.Module
	var err error
	if cmd.File.IsStdin() {
		mod, err = ldr.LoadBytes(runCtx, cmd.File.Filename, cmd.File.Contents)
	} else {
		mod, err = ldr.Load(runCtx, cmd.File.GetAbsoluteFilename())
	}
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if mod.Exposing == nil || mod.Exposing.All {
		printInfof(ctx.Stdout, "module %s exposes everything; @doc tags do not reorder it", mod.Name)
		return nil
	}

	declared := make([]string, len(mod.Exposing.Names))
	for i, name := range mod.Exposing.Names {
		declared[i] = name.Name
	}

	ordered, diags := formatter.OrderExports(mod.Comment.TagGroups(), declared)

	for _, name := range ordered {
		_, _ = fmt.Fprintln(ctx.Stdout, name)
	}

	if len(diags) > 0 {
		var ef errors.Formatter = errors.NewTextFormatter()
		if cmd.JSON {
			ef = errors.NewJSONFormatter()
		}
		_, _ = fmt.Fprintln(ctx.Stderr, ef.FormatAll(diags))
	}

	return nil
}
