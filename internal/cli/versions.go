package cli

import (
	"context"
	"fmt"

	"github.com/resdev/eclman/internal/manual"
	"github.com/resdev/eclman/internal/output"
)

// VersionsCmd lists installed releases
type VersionsCmd struct {
	Missing bool `help:"Include releases whose manual is missing"`
}

// Run executes the versions command
func (c *VersionsCmd) Run(globals *Globals) error {
	ctx := context.Background()

	root := globals.cfg().ECLPath
	if root == "" {
		return emitManualError(globals, manual.ErrRootUnset)
	}

	mgr := globals.releaseManager()
	installs, err := mgr.Installations(ctx, root)
	if err != nil {
		return outputErrorCommon(globals, "REPORT_FAILED", err.Error(), hintForTooling(err))
	}

	emitter := globals.emitter()
	if len(installs) == 0 {
		emitWarning(globals, emitter, fmt.Sprintf("no releases reported; the default %s is used", mgr.DefaultVersionLiteral()))
		return nil
	}

	if globals.Format == "ndjson" {
		for _, in := range installs {
			if !c.Missing && !in.ManualExists && !in.Latest {
				continue
			}
			if err := emitter.Installation(in); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(installs))
	for _, in := range installs {
		if !c.Missing && !in.ManualExists && !in.Latest {
			continue
		}
		latest := ""
		if in.Latest {
			latest = "*"
		}
		rows = append(rows, []string{latest, in.Version, yesNoPlain(in.ManualExists), in.ManualPath})
	}
	return output.RenderTable(globals.Stdout, []string{"", "Version", "Manual", "Path"}, rows)
}

func yesNoPlain(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
