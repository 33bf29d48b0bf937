package output

import (
	"io"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/resdev/eclman/internal/domain"
)

// Emitter wraps NDJSONWriter with helpers that reuse one encoder and stamp
// events from a clock.
type Emitter struct {
	w   *NDJSONWriter
	clk clock.Clock
}

func NewEmitterWithClock(w io.Writer, clk clock.Clock) *Emitter {
	return &Emitter{w: NewNDJSONWriter(w), clk: clk}
}

func (e *Emitter) Manual(m ManualOutput) error {
	m.Timestamp = e.clk.Now().UTC().Format(time.RFC3339)
	return e.w.WriteManual("manual", m)
}

func (e *Emitter) Opened(m ManualOutput) error {
	m.Timestamp = e.clk.Now().UTC().Format(time.RFC3339)
	return e.w.WriteManual("opened", m)
}

func (e *Emitter) Installation(in domain.Installation) error { return e.w.WriteInstallation(in) }
func (e *Emitter) Viewer(v domain.ViewerStatus) error        { return e.w.WriteViewer(v) }
func (e *Emitter) Simulator(s domain.SimulatorBinary) error  { return e.w.WriteSimulator(s) }
func (e *Emitter) Validation(v ValidationOutput) error       { return e.w.WriteValidation(v) }
func (e *Emitter) Query(file, path, raw string) error        { return e.w.WriteQuery(file, path, raw) }
func (e *Emitter) WriteWarning(msg string) error             { return e.w.WriteWarning(msg) }
func (e *Emitter) Metadata(version, commit string) error     { return e.w.WriteMetadata(version, commit) }
func (e *Emitter) Raw(v interface{}) error                   { return e.w.WriteRaw(v) }

func (e *Emitter) Error(code, msg string, hint ...string) error {
	return e.w.WriteError(code, msg, hint...)
}
