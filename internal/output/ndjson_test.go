package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/resdev/eclman/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestNDJSONWriter_WriteManual(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	err := w.WriteManual("opened", ManualOutput{
		Version:    "2020.1",
		Source:     "flag",
		Path:       "/ecl/2020.1/manuals/bookshelf.pdf",
		Viewer:     "evince",
		ViewerPath: "/usr/bin/evince",
		PID:        4242,
	})
	require.NoError(t, err)

	var out ManualOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "opened", out.Type)
	assert.Equal(t, SchemaVersion, out.SchemaVersion)
	assert.Equal(t, "2020.1", out.Version)
	assert.Equal(t, "/usr/bin/evince", out.ViewerPath)
	assert.Equal(t, 4242, out.PID)
}

func TestNDJSONWriter_OmitsEmptyViewer(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteManual("manual", ManualOutput{Version: "2019.3", Source: "default", Path: "/x"}))

	assert.NotContains(t, buf.String(), "viewer")
	assert.NotContains(t, buf.String(), "pid")
}

func TestNDJSONWriter_WriteInstallation(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteInstallation(domain.Installation{
		Version:      "2021.2",
		Root:         "/ecl",
		ManualPath:   "/ecl/2021.2/manuals/bookshelf.pdf",
		ManualExists: true,
		Latest:       true,
	}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "installation", lines[0]["type"])
	assert.Equal(t, "2021.2", lines[0]["version"])
	assert.Equal(t, true, lines[0]["manual_exists"])
}

func TestNDJSONWriter_WriteViewerAndSimulator(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteViewer(domain.ViewerStatus{Name: "okular", Path: "/usr/bin/okular", Priority: 2}))
	require.NoError(t, w.WriteSimulator(domain.SimulatorBinary{Kind: "flow", Name: "flow", Path: "/opt/bin/flow"}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "viewer", lines[0]["type"])
	assert.Equal(t, "okular", lines[0]["name"])
	assert.Equal(t, "simulator", lines[1]["type"])
	assert.Equal(t, "/opt/bin/flow", lines[1]["path"])
}

func TestNDJSONWriter_WriteValidation(t *testing.T) {
	t.Run("valid when no problems", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewNDJSONWriter(&buf)

		require.NoError(t, w.WriteValidation(ValidationOutput{File: "obs.yml", Kind: "observations"}))

		var out ValidationOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, "validation", out.Type)
		assert.True(t, out.Valid)
		assert.Empty(t, out.Problems)
	})

	t.Run("invalid with problems", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewNDJSONWriter(&buf)

		require.NoError(t, w.WriteValidation(ValidationOutput{
			File:     "obs.yml",
			Kind:     "observations",
			Valid:    true,
			Problems: []string{"smry[0]: missing key"},
		}))

		var out ValidationOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.False(t, out.Valid)
		assert.Equal(t, []string{"smry[0]: missing key"}, out.Problems)
	})
}

func TestNDJSONWriter_WriteQuery(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteQuery("obs.yml", "smry.#.key", `["WOPR:OP_1"]`))

	var out QueryOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "query", out.Type)
	assert.JSONEq(t, `["WOPR:OP_1"]`, string(out.Result))
}

func TestNDJSONWriter_WriteError(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteError("NO_VIEWER", "could not find a PDF viewer", "install evince"))

	var out domain.ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "error", out.Type)
	assert.Equal(t, SchemaVersion, out.SchemaVersion)
	assert.Equal(t, "NO_VIEWER", out.Code)
	assert.Equal(t, "could not find a PDF viewer", out.Message)
	assert.Equal(t, "install evince", out.Hint)
}

func TestNDJSONWriter_WriteWarningMetadata(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteWarning("careful"))
	require.NoError(t, w.WriteMetadata("1.2.3", "abc"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warning", lines[0]["type"])
	assert.Equal(t, "careful", lines[0]["message"])
	assert.Equal(t, "version", lines[1]["type"])
	assert.Equal(t, "abc", lines[1]["commit"])
}

func TestNDJSONWriter_DoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	w := NewNDJSONWriter(&buf)

	require.NoError(t, w.WriteWarning("a <b> & c"))

	assert.Contains(t, buf.String(), "a <b> & c")
}

func TestEmitter_TimestampsFromClock(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	e := NewEmitterWithClock(&buf, mock)

	require.NoError(t, e.Manual(ManualOutput{Version: "2019.3", Source: "default", Path: "/m"}))
	mock.Add(time.Minute)
	require.NoError(t, e.Opened(ManualOutput{Version: "2019.3", Source: "default", Path: "/m", PID: 7}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "manual", lines[0]["type"])
	assert.Equal(t, "2026-03-01T12:00:00Z", lines[0]["timestamp"])
	assert.Equal(t, "opened", lines[1]["type"])
	assert.Equal(t, "2026-03-01T12:01:00Z", lines[1]["timestamp"])
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	err := RenderTable(&buf, []string{"Version", "Manual"}, [][]string{
		{"2021.2", "/ecl/2021.2/manuals/bookshelf.pdf"},
		{"2019.3", "/ecl/2019.3/manuals/bookshelf.pdf"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2021.2")
	assert.Contains(t, out, "/ecl/2019.3/manuals/bookshelf.pdf")
	assert.Less(t, strings.Index(out, "2021.2"), strings.Index(out, "2019.3"))
}

func TestStatusIcon(t *testing.T) {
	assert.Contains(t, StatusIcon("ok"), "✓")
	assert.Contains(t, StatusIcon("warning"), "⚠")
	assert.Contains(t, StatusIcon("error"), "✗")
	assert.Equal(t, " ", StatusIcon("other"))
}
