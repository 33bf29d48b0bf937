package cli

import (
	"context"
	"fmt"

	"github.com/resdev/eclman/internal/output"
)

// OpenCmd opens the manual of the newest (or given) release
type OpenCmd struct {
	Version string `short:"v" placeholder:"VERSION" help:"Release to open instead of the newest installed one"`
}

// Run executes the open command
func (c *OpenCmd) Run(globals *Globals) error {
	ctx := context.Background()

	res, err := globals.opener().Open(ctx, c.Version)
	if err != nil {
		return emitManualError(globals, err)
	}

	if globals.Format == "ndjson" {
		return globals.emitter().Opened(manualOutput(res))
	}
	globals.Debug("opened %s with %s (pid %d)", res.Path, res.ViewerPath, res.PID)
	return nil
}

// PathCmd prints the manual path for a release
type PathCmd struct {
	Version string `short:"v" placeholder:"VERSION" help:"Release to locate instead of the newest installed one"`
}

// Run executes the path command
func (c *PathCmd) Run(globals *Globals) error {
	ctx := context.Background()

	res, err := globals.opener().Locate(ctx, c.Version)
	if err != nil {
		return emitManualError(globals, err)
	}

	if globals.Format == "ndjson" {
		return globals.emitter().Manual(manualOutput(res))
	}
	if globals.Verbose {
		fmt.Fprintf(globals.Stderr, "%s %s (%s)\n",
			output.Styles.Label.Render("version"), res.Version, res.Source)
	}
	_, err = fmt.Fprintln(globals.Stdout, res.Path)
	return err
}
