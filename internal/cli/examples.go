package cli

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExamplesCmd shows usage examples for eclman commands
type ExamplesCmd struct {
	Command string `arg:"" optional:"" help:"Show examples for a specific command (open, versions, obs, etc.)"`
	JSON    bool   `help:"Output as JSON for programmatic access"`
}

// Example represents a single usage example
type Example struct {
	Command     string `json:"command"`
	Description string `json:"description"`
	Output      string `json:"output,omitempty"`
	When        string `json:"when,omitempty"`
}

// CommandExamples holds examples for a single command
type CommandExamples struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
}

// AllExamples contains examples for all commands
type AllExamples struct {
	Type     string            `json:"type"`
	Version  string            `json:"version"`
	Commands []CommandExamples `json:"commands"`
}

var exampleOrder = []string{"open", "path", "versions", "viewers", "pick", "obs", "grav", "simulators", "doctor", "config"}

var commandExamples = map[string]CommandExamples{
	"open": {
		Name:        "open",
		Description: "Open the manual of the newest installed release",
		Examples: []Example{
			{
				Command:     `eclman`,
				Description: "Detect the latest release and open its bookshelf",
			},
			{
				Command:     `eclman -v 2020.1`,
				Description: "Open the manual of a specific release",
				When:        "Working on a deck pinned to an older release",
			},
			{
				Command:     `eclman open -f ndjson`,
				Description: "Open and report the viewer process",
				Output:      `{"type":"opened","version":"2021.2","viewer":"evince","pid":12345,...}`,
			},
		},
	},
	"path": {
		Name:        "path",
		Description: "Print the manual path without opening it",
		Examples: []Example{
			{
				Command:     `xdg-open "$(eclman path -v 2019.3)"`,
				Description: "Hand the manual to another program",
			},
		},
	},
	"versions": {
		Name:        "versions",
		Description: "List installed releases",
		Examples: []Example{
			{
				Command:     `eclman versions --missing`,
				Description: "Include releases without a manual",
			},
		},
	},
	"viewers": {
		Name:        "viewers",
		Description: "Show which PDF viewers are installed",
		Examples: []Example{
			{
				Command:     `eclman viewers`,
				Description: "The starred row is the viewer open would use",
			},
		},
	},
	"pick": {
		Name:        "pick",
		Description: "Choose a release interactively",
		Examples: []Example{
			{
				Command:     `eclman pick`,
				Description: "Pick a release and open its manual",
			},
			{
				Command:     `eclman pick --print-only`,
				Description: "Pick a release and print its version",
			},
		},
	},
	"obs": {
		Name:        "obs",
		Description: "Observation fixture tools",
		Examples: []Example{
			{
				Command:     `eclman obs example > observations.yml`,
				Description: "Start a fixture from the example",
			},
			{
				Command:     `eclman obs validate observations.yml`,
				Description: "Check keys, time indices and dates",
			},
			{
				Command:     `eclman obs roundtrip observations.yml`,
				Description: "Check that the file survives parse, serialize, parse",
			},
			{
				Command:     `eclman obs query observations.yml 'smry.#.key'`,
				Description: "List the summary keys with observations",
			},
		},
	},
	"grav": {
		Name:        "grav",
		Description: "Gravity/subsidence map configuration tools",
		Examples: []Example{
			{
				Command:     `eclman grav validate grav_subs_maps.yml`,
				Description: "Check dates, ratios, phases and the seabed map",
			},
			{
				Command:     `eclman grav surfaces grav_subs_maps.yml -o share/results/maps --missing`,
				Description: "List surfaces a modelling run has not produced yet",
			},
		},
	},
	"simulators": {
		Name:        "simulators",
		Description: "Locate reservoir simulators",
		Examples: []Example{
			{
				Command:     `eclman simulators --require flow`,
				Description: "Fail unless the open-source simulator is available",
				When:        "Guarding test runs that need a simulator",
			},
		},
	},
	"doctor": {
		Name:        "doctor",
		Description: "Check the installation",
		Examples: []Example{
			{
				Command:     `eclman doctor`,
				Description: "Check ECLPATH, the report command, manuals, viewers and config",
			},
		},
	},
	"config": {
		Name:        "config",
		Description: "Configuration",
		Examples: []Example{
			{
				Command:     `eclman config generate > ~/.eclman.yaml`,
				Description: "Write a commented config file",
			},
			{
				Command:     `eclman config show`,
				Description: "Show effective values and where they came from",
			},
		},
	},
}

// Run executes the examples command
func (c *ExamplesCmd) Run(globals *Globals) error {
	if c.JSON || globals.Format == "ndjson" {
		return c.outputJSON(globals)
	}
	return c.outputText(globals)
}

func (c *ExamplesCmd) selected() ([]CommandExamples, error) {
	if c.Command != "" {
		examples, ok := commandExamples[c.Command]
		if !ok {
			return nil, fmt.Errorf("unknown command: %s\nAvailable: %s", c.Command, strings.Join(exampleOrder, ", "))
		}
		return []CommandExamples{examples}, nil
	}
	all := make([]CommandExamples, 0, len(exampleOrder))
	for _, name := range exampleOrder {
		all = append(all, commandExamples[name])
	}
	return all, nil
}

func (c *ExamplesCmd) outputJSON(globals *Globals) error {
	commands, err := c.selected()
	if err != nil {
		return err
	}

	data, err := json.Marshal(AllExamples{Type: "examples", Version: Version, Commands: commands})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(globals.Stdout, string(data))
	return err
}

func (c *ExamplesCmd) outputText(globals *Globals) error {
	commands, err := c.selected()
	if err != nil {
		return err
	}

	var sb strings.Builder
	if c.Command == "" {
		sb.WriteString("ECLMAN USAGE EXAMPLES\n")
		sb.WriteString("=====================\n\n")
	}
	for _, cmd := range commands {
		c.formatCommandExamples(&sb, cmd)
	}

	_, err = fmt.Fprint(globals.Stdout, sb.String())
	return err
}

func (c *ExamplesCmd) formatCommandExamples(sb *strings.Builder, cmd CommandExamples) {
	sb.WriteString(fmt.Sprintf("## %s\n", strings.ToUpper(cmd.Name)))
	sb.WriteString(fmt.Sprintf("%s\n\n", cmd.Description))

	for _, ex := range cmd.Examples {
		sb.WriteString(fmt.Sprintf("  %s\n", ex.Command))
		sb.WriteString(fmt.Sprintf("    %s\n", ex.Description))
		if ex.Output != "" {
			sb.WriteString(fmt.Sprintf("    Output: %s\n", ex.Output))
		}
		if ex.When != "" {
			sb.WriteString(fmt.Sprintf("    When: %s\n", ex.When))
		}
		sb.WriteString("\n")
	}
}
