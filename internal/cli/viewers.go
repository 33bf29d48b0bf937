package cli

import (
	"fmt"
	"strconv"

	"github.com/resdev/eclman/internal/output"
	"github.com/resdev/eclman/internal/viewer"
)

// ViewersCmd shows PDF viewer availability
type ViewersCmd struct{}

// Run executes the viewers command
func (c *ViewersCmd) Run(globals *Globals) error {
	statuses := viewer.Survey(globals.viewerCandidates())

	if globals.Format == "ndjson" {
		emitter := globals.emitter()
		for _, s := range statuses {
			if err := emitter.Viewer(s); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		mark := ""
		if s.Selected {
			mark = "*"
		}
		rows = append(rows, []string{mark, strconv.Itoa(s.Priority), s.Name, s.Path, yesNoPlain(s.Executable)})
	}
	if err := output.RenderTable(globals.Stdout, []string{"", "Priority", "Name", "Path", "Executable"}, rows); err != nil {
		return err
	}

	if _, err := viewer.Select(globals.viewerCandidates()); err != nil && !globals.Quiet {
		fmt.Fprintln(globals.Stderr, output.Styles.Warning.Render(err.Error()))
	}
	return nil
}
