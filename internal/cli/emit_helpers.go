package cli

import (
	"fmt"

	"github.com/resdev/eclman/internal/manual"
	"github.com/resdev/eclman/internal/output"
)

// emitWarning respects format/quiet.
func emitWarning(globals *Globals, emitter *output.Emitter, msg string) {
	if globals.Quiet {
		return
	}
	if globals.Format == "ndjson" && emitter != nil {
		emitter.WriteWarning(msg)
		return
	}
	fmt.Fprintf(globals.Stderr, "Warning: %s\n", msg)
}

// emitManualError reports a failure of the open workflow. Text mode prints
// the bare message on stderr; ndjson mode writes an error object.
func emitManualError(globals *Globals, err error) error {
	e := classifyManualError(err)
	if globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(e.Code, e.Message, e.Hint)
		return e
	}
	fmt.Fprintln(globals.Stderr, e.Message)
	globals.Debug("%s: %s", e.Code, e.Hint)
	return e
}

func manualOutput(r manual.Result) output.ManualOutput {
	return output.ManualOutput{
		Version:    r.Version,
		Source:     string(r.Source),
		Path:       r.Path,
		Viewer:     r.Viewer,
		ViewerPath: r.ViewerPath,
		PID:        r.PID,
	}
}
