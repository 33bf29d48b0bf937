package cli

import (
	"encoding/json"
	"fmt"

	"github.com/resdev/eclman/internal/output"
)

// UpdateCmd shows how to upgrade eclman
type UpdateCmd struct{}

// UpdateOutput represents the NDJSON output for update instructions
type UpdateOutput struct {
	Type          string `json:"type"`
	SchemaVersion int    `json:"schemaVersion"`
	Version       string `json:"current_version"`
	Commit        string `json:"commit"`
	GoInstall     string `json:"go_install"`
	ReleasesURL   string `json:"releases_url"`
}

const (
	goInstallCmd = "go install github.com/resdev/eclman/cmd/eclman@latest"
	releasesURL  = "https://github.com/resdev/eclman/releases"
)

// Run executes the update command
func (c *UpdateCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		out := UpdateOutput{
			Type:          "update",
			SchemaVersion: output.SchemaVersion,
			Version:       Version,
			Commit:        Commit,
			GoInstall:     goInstallCmd,
			ReleasesURL:   releasesURL,
		}
		return json.NewEncoder(globals.Stdout).Encode(out)
	}

	lines := []string{
		"eclman update instructions",
		"",
		fmt.Sprintf("Current version: %s (%s)", Version, Commit),
		"",
		"To upgrade via Go:",
		"  " + goInstallCmd,
		"",
		"For release notes, see:",
		"  " + releasesURL,
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(globals.Stdout, l); err != nil {
			return err
		}
	}
	return nil
}
