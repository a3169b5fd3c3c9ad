package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestPrintHelpers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var buf bytes.Buffer
		printSuccess(&buf, "wrote out.elm")
		assert.True(t, strings.Contains(buf.String(), "wrote out.elm"))
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})

	t.Run("Error", func(t *testing.T) {
		var buf bytes.Buffer
		printError(&buf, "something broke")
		assert.True(t, strings.Contains(buf.String(), "something broke"))
	})

	t.Run("Infof", func(t *testing.T) {
		var buf bytes.Buffer
		printInfof(&buf, "watching %s", "tree.json")
		assert.True(t, strings.Contains(buf.String(), "watching tree.json"))
	})
}

func TestCommandError(t *testing.T) {
	err := NewCommandError(2)
	assert.Equal(t, 2, err.ExitCode())
	assert.Equal(t, "command failed", err.Error())

	var cmdErr *CommandError
	assert.True(t, errors.As(error(err), &cmdErr))
}

func TestDebounce(t *testing.T) {
	t.Run("BurstCoalescesToOneSignal", func(t *testing.T) {
		signal := make(chan struct{}, 1)

		var timer *time.Timer
		for i := 0; i < 5; i++ {
			timer = debounce(timer, 10*time.Millisecond, signal)
		}

		select {
		case <-signal:
		case <-time.After(time.Second):
			t.Fatal("expected a signal after the debounce delay")
		}

		select {
		case <-signal:
			t.Fatal("burst must collapse into a single signal")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("PendingSignalAbsorbsLateFire", func(t *testing.T) {
		signal := make(chan struct{}, 1)
		signal <- struct{}{}

		// A timer firing while a signal is already pending must not
		// block; the pending signal covers it.
		timer := debounce(nil, time.Millisecond, signal)
		defer timer.Stop()
		time.Sleep(20 * time.Millisecond)

		<-signal
		select {
		case <-signal:
			t.Fatal("no extra signal expected")
		default:
		}
	})
}

func TestFileOrStdin(t *testing.T) {
	t.Run("IsStdin", func(t *testing.T) {
		f := &FileOrStdin{Filename: "<stdin>", Contents: []byte("{}")}
		assert.True(t, f.IsStdin())
		assert.Equal(t, "<stdin>", f.GetAbsoluteFilename())
	})

	t.Run("AbsoluteFilename", func(t *testing.T) {
		f := &FileOrStdin{Filename: "tree.json"}
		assert.False(t, f.IsStdin())
		assert.True(t, filepath.IsAbs(f.GetAbsoluteFilename()))
	})
}
