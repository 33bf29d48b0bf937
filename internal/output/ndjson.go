package output

import (
	"encoding/json"
	"io"

	"github.com/resdev/eclman/internal/domain"
)

// NDJSONWriter writes eclman events as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // paths and queries stay readable
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// ManualOutput describes a located or opened manual
type ManualOutput struct {
	Type          string `json:"type"` // "manual" or "opened"
	SchemaVersion int    `json:"schemaVersion"`
	Timestamp     string `json:"timestamp,omitempty"`
	Version       string `json:"version"`
	Source        string `json:"source"`
	Path          string `json:"path"`
	Viewer        string `json:"viewer,omitempty"`
	ViewerPath    string `json:"viewer_path,omitempty"`
	PID           int    `json:"pid,omitempty"`
}

// InstallationOutput is one installed release
type InstallationOutput struct {
	Type          string `json:"type"` // Always "installation"
	SchemaVersion int    `json:"schemaVersion"`
	domain.Installation
}

// ViewerOutput is one PDF viewer candidate
type ViewerOutput struct {
	Type          string `json:"type"` // Always "viewer"
	SchemaVersion int    `json:"schemaVersion"`
	domain.ViewerStatus
}

// SimulatorOutput is one discovered simulator executable
type SimulatorOutput struct {
	Type          string `json:"type"` // Always "simulator"
	SchemaVersion int    `json:"schemaVersion"`
	domain.SimulatorBinary
}

// ValidationOutput reports the result of checking a file
type ValidationOutput struct {
	Type          string         `json:"type"` // Always "validation"
	SchemaVersion int            `json:"schemaVersion"`
	File          string         `json:"file"`
	Kind          string         `json:"kind"` // "observations", "roundtrip" or "grav"
	Valid         bool           `json:"valid"`
	Problems      []string       `json:"problems,omitempty"`
	Counts        map[string]int `json:"counts,omitempty"`
}

// QueryOutput holds the raw JSON selected by a query path
type QueryOutput struct {
	Type          string          `json:"type"` // Always "query"
	SchemaVersion int             `json:"schemaVersion"`
	File          string          `json:"file"`
	Path          string          `json:"path"`
	Result        json.RawMessage `json:"result"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// MetadataOutput describes the running binary
type MetadataOutput struct {
	Type          string `json:"type"` // Always "version"
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"version"`
	Commit        string `json:"commit"`
}

// WriteManual outputs a manual event. kind is "manual" or "opened".
func (w *NDJSONWriter) WriteManual(kind string, m ManualOutput) error {
	m.Type = kind
	m.SchemaVersion = SchemaVersion
	return w.encoder.Encode(&m)
}

// WriteInstallation outputs one installed release
func (w *NDJSONWriter) WriteInstallation(in domain.Installation) error {
	return w.encoder.Encode(&InstallationOutput{
		Type:          "installation",
		SchemaVersion: SchemaVersion,
		Installation:  in,
	})
}

// WriteViewer outputs one viewer candidate
func (w *NDJSONWriter) WriteViewer(v domain.ViewerStatus) error {
	return w.encoder.Encode(&ViewerOutput{
		Type:          "viewer",
		SchemaVersion: SchemaVersion,
		ViewerStatus:  v,
	})
}

// WriteSimulator outputs one simulator executable
func (w *NDJSONWriter) WriteSimulator(s domain.SimulatorBinary) error {
	return w.encoder.Encode(&SimulatorOutput{
		Type:            "simulator",
		SchemaVersion:   SchemaVersion,
		SimulatorBinary: s,
	})
}

// WriteValidation outputs a validation result
func (w *NDJSONWriter) WriteValidation(v ValidationOutput) error {
	v.Type = "validation"
	v.SchemaVersion = SchemaVersion
	v.Valid = len(v.Problems) == 0
	return w.encoder.Encode(&v)
}

// WriteQuery outputs a query result
func (w *NDJSONWriter) WriteQuery(file, path, raw string) error {
	return w.encoder.Encode(&QueryOutput{
		Type:          "query",
		SchemaVersion: SchemaVersion,
		File:          file,
		Path:          path,
		Result:        json.RawMessage(raw),
	})
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string, hint ...string) error {
	err := domain.NewErrorOutput(code, message)
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteMetadata outputs version metadata
func (w *NDJSONWriter) WriteMetadata(version, commit string) error {
	return w.encoder.Encode(&MetadataOutput{
		Type:          "version",
		SchemaVersion: SchemaVersion,
		Version:       version,
		Commit:        commit,
	})
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}
