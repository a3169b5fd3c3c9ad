package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/errors"
	"github.com/robinvdvleuten/elmfmt/formatter"
	"github.com/robinvdvleuten/elmfmt/loader"
	"github.com/robinvdvleuten/elmfmt/output"
	"github.com/robinvdvleuten/elmfmt/telemetry"
)

type FmtCmd struct {
	File        FileOrStdin `help:"Parsed module tree as JSON (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Width       int         `help:"Line width the formatter fits output to." default:"80"`
	Indentation int         `help:"Spaces per indentation level." default:"4"`
	Fixities    string      `help:"JSON file with operator fixity declarations." type:"existingfile" optional:""`
	Output      string      `help:"Write formatted source to this file instead of stdout." short:"o" optional:""`
	Force       bool        `help:"Overwrite the output file without confirmation." short:"f"`
	Watch       bool        `help:"Watch the input file and reformat on changes." short:"w"`
	JSON        bool        `help:"Emit diagnostics as JSON instead of text."`
}

func (cmd *FmtCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	if globals.Telemetry {
		collector := telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr, output.NewStyles(ctx.Stderr))
		}()
	}

	ldr := loader.New()

	var fixities ast.Fixities
	if cmd.Fixities != "" {
		var err error
		fixities, err = ldr.LoadFixities(runCtx, cmd.Fixities)
		if err != nil {
			printError(ctx.Stderr, err.Error())
			return NewCommandError(1)
		}
	}

	f := formatter.New(
		formatter.WithWidth(cmd.Width),
		formatter.WithIndentation(cmd.Indentation),
		formatter.WithFixities(fixities),
	)

	if cmd.Watch {
		if cmd.File.IsStdin() {
			return fmt.Errorf("cannot watch stdin; pass a filename")
		}
		return cmd.watch(runCtx, ctx, ldr, f)
	}

	return cmd.formatOnce(runCtx, ctx, ldr, f)
}

func (cmd *FmtCmd) formatOnce(runCtx context.Context, ctx *kong.Context, ldr *loader.Loader, f *formatter.Formatter) error {
	mod, err := cmd.loadModule(runCtx, ldr)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	var buf bytes.Buffer
	diags, err := f.Format(runCtx, mod, &buf)
	cmd.reportDiagnostics(ctx, diags)
	if err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	if cmd.Output == "" {
		_, err := ctx.Stdout.Write(buf.Bytes())
		return err
	}

	if err := cmd.writeOutput(buf.Bytes()); err != nil {
		printError(ctx.Stderr, err.Error())
		return NewCommandError(1)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", cmd.Output))
	return nil
}

func (cmd *FmtCmd) loadModule(runCtx context.Context, ldr *loader.Loader) (*ast.Module, error) {
	if cmd.File.IsStdin() {
		return ldr.LoadBytes(runCtx, cmd.File.Filename, cmd.File.Contents)
	}
	return ldr.Load(runCtx, cmd.File.GetAbsoluteFilename())
}

func (cmd *FmtCmd) reportDiagnostics(ctx *kong.Context, diags []formatter.Diagnostic) {
	if len(diags) == 0 {
		return
	}

	var ef errors.Formatter = errors.NewTextFormatter()
	if cmd.JSON {
		ef = errors.NewJSONFormatter()
	}
	_, _ = fmt.Fprintln(ctx.Stderr, ef.FormatAll(diags))
}

func (cmd *FmtCmd) writeOutput(formatted []byte) error {
	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("File %q already exists. Overwrite it?", cmd.Output))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			return fmt.Errorf("refusing to overwrite %s", cmd.Output)
		}
	}

	parentDir := filepath.Dir(cmd.Output)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	return os.WriteFile(cmd.Output, formatted, 0644)
}

// watch reformats the input tree whenever it changes on disk. Editors
// often write files in multiple steps, so events are debounced.
func (cmd *FmtCmd) watch(runCtx context.Context, ctx *kong.Context, ldr *loader.Loader, f *formatter.Formatter) error {
	runCtx, stop := signal.NotifyContext(runCtx, os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	filename := cmd.File.GetAbsoluteFilename()
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	printInfof(ctx.Stdout, "Watching %s", filename)

	if err := cmd.formatOnce(runCtx, ctx, ldr, f); err != nil {
		printError(ctx.Stderr, "initial format failed")
	}

	// Reformats run on this loop, never in the timer goroutine: a timer
	// that already fired when Stop is called would otherwise race a
	// reformat scheduled by the next event.
	reformat := make(chan struct{}, 1)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-runCtx.Done():
			return nil

		case <-reformat:
			if err := cmd.formatOnce(runCtx, ctx, ldr, f); err != nil {
				printError(ctx.Stderr, "reformat failed")
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Name != filename {
				continue
			}

			// Remove/Rename are common in atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			debounceTimer = debounce(debounceTimer, debounceDelay, reformat)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// debounce rearms the timer so a burst of events collapses into one
// signal. The channel send is non-blocking: a signal already pending
// covers the burst.
func debounce(timer *time.Timer, delay time.Duration, signal chan<- struct{}) *time.Timer {
	if timer != nil {
		timer.Stop()
	}
	return time.AfterFunc(delay, func() {
		select {
		case signal <- struct{}{}:
		default:
		}
	})
}
