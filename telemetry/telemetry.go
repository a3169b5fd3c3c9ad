// Package telemetry provides hierarchical timing collection for
// formatting operations.
//
// Collectors travel through context so instrumentation stays out of
// function signatures; code paths that never receive a collector pay a
// no-op. Typical use:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := telemetry.FromContext(ctx).Start("format Main")
//	child := timer.Child("render")
//	// ... work ...
//	child.End()
//	timer.End()
//
//	collector.Report(os.Stderr, nil)
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/elmfmt/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers telemetry for a run.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected telemetry. Styles may be nil for
	// unstyled output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Child creates a timer nested under this one.
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the context's collector, or a no-op collector
// when none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
