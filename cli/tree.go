package cli

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/robinvdvleuten/elmfmt/loader"
)

type TreeCmd struct {
	File FileOrStdin `help:"Parsed module tree as JSON (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *TreeCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()
	ldr := loader.New()

	var mod any
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

	repr.New(ctx.Stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(mod)

	return nil
}
