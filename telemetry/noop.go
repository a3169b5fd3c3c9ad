package telemetry

import (
	"io"

	"github.com/robinvdvleuten/elmfmt/output"
)

// noOpCollector is used when no collector is attached to the context;
// it makes instrumentation free when telemetry is disabled.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer { return noOpTimer{} }

func (noOpCollector) Report(w io.Writer, styles *output.Styles) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
