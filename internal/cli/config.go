package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/resdev/eclman/internal/config"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.cfg()

	if globals.Format == "ndjson" {
		output := map[string]interface{}{
			"type":       "config",
			"format":     cfg.Format,
			"quiet":      cfg.Quiet,
			"verbose":    cfg.Verbose,
			"eclpath":    cfg.ECLPath,
			"release":    cfg.Release,
			"viewers":    cfg.Viewers,
			"simulators": cfg.Simulators,
		}
		if globals.ConfigFile != "" {
			output["config_file"] = globals.ConfigFile
		}
		if len(globals.ConfigSources) > 0 {
			output["sources"] = globals.ConfigSources
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintf(globals.Stdout, "  format:  %s\n", cfg.Format)
	fmt.Fprintf(globals.Stdout, "  quiet:   %v\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "  verbose: %v\n", cfg.Verbose)
	fmt.Fprintf(globals.Stdout, "  eclpath: %s\n", cfg.ECLPath)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Release:")
	fmt.Fprintf(globals.Stdout, "  report_command:  %s\n", strings.Join(cfg.Release.ReportCommand, " "))
	fmt.Fprintf(globals.Stdout, "  default_version: %s\n", cfg.Release.DefaultVersion)
	fmt.Fprintf(globals.Stdout, "  manual_suffix:   %s\n", cfg.Release.ManualSuffix)
	fmt.Fprintf(globals.Stdout, "  timeout:         %s\n", cfg.Release.Timeout)
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Viewers:")
	for _, v := range cfg.Viewers {
		fmt.Fprintf(globals.Stdout, "  - %s\n", v)
	}
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprintln(globals.Stdout, "Simulators:")
	fmt.Fprintf(globals.Stdout, "  candidates:     %s\n", strings.Join(cfg.Simulators.Candidates, ", "))
	fmt.Fprintf(globals.Stdout, "  extra_paths:    %s\n", strings.Join(cfg.Simulators.ExtraPaths, ", "))
	fmt.Fprintf(globals.Stdout, "  eclipse_marker: %s\n", cfg.Simulators.EclipseMarker)

	if len(globals.ConfigSources) > 0 {
		keys := make([]string, 0, len(globals.ConfigSources))
		for k := range globals.ConfigSources {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Sources:")
		for _, k := range keys {
			fmt.Fprintf(globals.Stdout, "  %-10s %s\n", k+":", globals.ConfigSources[k])
		}
	}

	if globals.ConfigFile != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", globals.ConfigFile)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := globals.ConfigFile
	if path == "" {
		path = config.ConfigFile()
	}

	if globals.Format == "ndjson" {
		output := map[string]interface{}{
			"type": "config_path",
			"path": path,
		}
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(output)
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.eclman.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.eclman.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/eclman/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# eclman configuration file
# Place this file at ./.eclman.yaml, ~/.eclman.yaml or ~/.config/eclman/config.yaml

# Output format: "text" (default) or "ndjson"
format: text

# Suppress informational output
quiet: false

# Enable debug output
verbose: false

# Root holding one directory per installed release. The ECLPATH environment
# variable takes precedence.
# eclpath: /prog/ecl/grid

release:
  # Command printing the installed versions, one per line or space separated
  report_command: [eclrun, --report-versions, eclipse]

  # Version used when the report command prints nothing
  default_version: "2019.3"

  # Manual location below <eclpath>/<version>
  manual_suffix: manuals/bookshelf.pdf

  # Time allowed for the report command
  timeout: 10s

# PDF viewers, tried in order; the first executable one is used
viewers:
  - /usr/bin/evince
  - /usr/bin/okular
  - /usr/bin/acroread
  - /usr/bin/xpdf

simulators:
  # Open-source simulator names, in order of preference
  candidates: [flow, flowdaily]

  # Searched after PATH
  extra_paths:
    - /project/res/x86_64_RH_7/bin

  # runeclipse is reported only when this path exists
  eclipse_marker: /prog/res/ecl/grid
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}
