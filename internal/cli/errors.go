package cli

import (
	"errors"
	"fmt"

	"github.com/resdev/eclman/internal/output"
)

// outputErrorCommon normalizes error emission across commands, respecting
// ndjson vs text formats so scripts always get machine-readable failures.
func outputErrorCommon(globals *Globals, code, message string, hint ...string) error {
	if globals != nil && globals.Format == "ndjson" {
		output.NewNDJSONWriter(globals.Stdout).WriteError(code, message, hint...)
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
		if len(hint) > 0 && hint[0] != "" && !globals.Quiet {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", hint[0])
		}
	}
	return errors.New(message)
}

// outputCLIError emits a CLIError and returns it.
func outputCLIError(globals *Globals, e *CLIError) error {
	outputErrorCommon(globals, e.Code, e.Message, e.Hint)
	return e
}
