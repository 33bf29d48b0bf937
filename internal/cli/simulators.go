package cli

import (
	"github.com/resdev/eclman/internal/output"
)

// SimulatorsCmd lists reservoir simulator executables
type SimulatorsCmd struct {
	Require string `placeholder:"KIND" help:"Fail unless this simulator is found (flow or eclipse)"`
}

// Run executes the simulators command
func (c *SimulatorsCmd) Run(globals *Globals) error {
	found := globals.locator().Available()
	globals.Debug("found %d simulator(s)", len(found))

	if c.Require != "" && c.Require != "flow" && c.Require != "eclipse" {
		return outputErrorCommon(globals, "INVALID_ARGUMENT", "unknown simulator kind: "+c.Require, "Use flow or eclipse")
	}

	if c.Require != "" {
		ok := false
		for _, s := range found {
			if s.Kind == c.Require {
				ok = true
				break
			}
		}
		if !ok {
			return outputErrorCommon(globals, "SIMULATOR_NOT_FOUND",
				"could not find a "+c.Require+" simulator",
				"Put it on PATH or add its directory to simulators.extra_paths in the config file")
		}
	}

	emitter := globals.emitter()
	if len(found) == 0 {
		emitWarning(globals, emitter, "no reservoir simulator found")
		return nil
	}

	if globals.Format == "ndjson" {
		for _, s := range found {
			if err := emitter.Simulator(s); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(found))
	for _, s := range found {
		rows = append(rows, []string{s.Kind, s.Name, s.Path})
	}
	return output.RenderTable(globals.Stdout, []string{"Kind", "Name", "Path"}, rows)
}
