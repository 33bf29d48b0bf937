package cli

import (
	"fmt"
	"os"
	"path/filepath"

	embedfiles "github.com/resdev/eclman"
	"github.com/resdev/eclman/internal/gravconfig"
	"github.com/resdev/eclman/internal/output"
	"go.uber.org/multierr"
)

// GravCmd groups the gravity/subsidence config commands
type GravCmd struct {
	Validate GravValidateCmd `cmd:"" help:"Check a gravity/subsidence map configuration"`
	Surfaces GravSurfacesCmd `cmd:"" help:"List the surface files a modelling run writes"`
	Example  GravExampleCmd  `cmd:"" help:"Print an example configuration"`
}

// GravValidateCmd validates a map configuration
type GravValidateCmd struct {
	File string `arg:"" type:"path" help:"Configuration file"`
}

// Run executes the grav validate command
func (c *GravValidateCmd) Run(globals *Globals) error {
	result := output.ValidationOutput{File: c.File, Kind: "grav"}

	cfg, err := gravconfig.Load(c.File)
	if err != nil {
		result.Problems = problemList(err)
	} else {
		result.Problems = problemList(cfg.Validate(filepath.Dir(c.File)))
		result.Counts = map[string]int{
			"diffdates": len(cfg.Input.Diffdates),
			"phases":    len(cfg.Calculations.Phases),
			"surfaces":  len(cfg.SurfaceNames()),
		}
	}

	if globals.Format == "ndjson" {
		if err := globals.emitter().Validation(result); err != nil {
			return err
		}
	} else if len(result.Problems) == 0 {
		if !globals.Quiet {
			fmt.Fprintf(globals.Stdout, "%s %s (%d date pairs, %d phases, %d surfaces)\n",
				output.StatusIcon("ok"), c.File,
				result.Counts["diffdates"], result.Counts["phases"], result.Counts["surfaces"])
		}
	} else {
		fmt.Fprintf(globals.Stdout, "%s %s\n", output.StatusIcon("error"), c.File)
		for _, p := range result.Problems {
			fmt.Fprintf(globals.Stdout, "  %s\n", p)
		}
	}

	if len(result.Problems) > 0 {
		return fmt.Errorf("%s: %d problem(s)", c.File, len(result.Problems))
	}
	return nil
}

// GravSurfacesCmd lists expected output surfaces
type GravSurfacesCmd struct {
	File      string `arg:"" type:"path" help:"Configuration file"`
	OutputDir string `short:"o" type:"path" placeholder:"DIR" help:"Directory the surfaces are written to"`
	Missing   bool   `help:"List only surfaces not yet present in the output directory"`
}

// Run executes the grav surfaces command
func (c *GravSurfacesCmd) Run(globals *Globals) error {
	cfg, err := gravconfig.Load(c.File)
	if err != nil {
		return outputErrorCommon(globals, "INVALID_CONFIG", err.Error(),
			fmt.Sprintf("Run `eclman grav validate %s`", c.File))
	}

	var paths []string
	for _, name := range cfg.SurfaceNames() {
		path := name
		if c.OutputDir != "" {
			path = filepath.Join(c.OutputDir, name)
		}
		if c.Missing {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		paths = append(paths, path)
	}

	if globals.Format == "ndjson" {
		return globals.emitter().Raw(map[string]interface{}{
			"type":          "surfaces",
			"schemaVersion": output.SchemaVersion,
			"file":          c.File,
			"survey_dates":  cfg.SurveyDates(),
			"surfaces":      paths,
		})
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(globals.Stdout, p); err != nil {
			return err
		}
	}
	return nil
}

// GravExampleCmd prints an example configuration
type GravExampleCmd struct{}

// Run executes the grav example command
func (c *GravExampleCmd) Run(globals *Globals) error {
	_, err := globals.Stdout.Write(embedfiles.GravExample)
	return err
}

func problemList(err error) []string {
	var out []string
	for _, e := range multierr.Errors(err) {
		out = append(out, e.Error())
	}
	return out
}
