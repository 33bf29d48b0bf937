package cli

import (
	"errors"
	"fmt"
	"os"

	embedfiles "github.com/resdev/eclman"
	"github.com/resdev/eclman/internal/observations"
	"github.com/resdev/eclman/internal/output"
)

// ObsCmd groups the observation fixture commands
type ObsCmd struct {
	Validate  ObsValidateCmd  `cmd:"" help:"Check an observation fixture against the schema"`
	Roundtrip ObsRoundtripCmd `cmd:"" help:"Check that a fixture survives parse, serialize, parse"`
	Query     ObsQueryCmd     `cmd:"" help:"Select values from a fixture with a gjson path"`
	Example   ObsExampleCmd   `cmd:"" help:"Print an example observation fixture"`
}

// ObsValidateCmd validates observation fixtures
type ObsValidateCmd struct {
	Files []string `arg:"" type:"path" help:"Fixture files to check"`
}

// Run executes the obs validate command
func (c *ObsValidateCmd) Run(globals *Globals) error {
	emitter := globals.emitter()
	failed := 0

	for _, file := range c.Files {
		result := output.ValidationOutput{File: file, Kind: "observations"}

		doc, err := observations.Load(file)
		if err != nil {
			result.Problems = []string{err.Error()}
		} else {
			result.Problems = observations.Problems(doc.Validate())
			vectors, keys, points := doc.Counts()
			result.Counts = map[string]int{"smryh": vectors, "smry": keys, "observations": points}
		}
		if len(result.Problems) > 0 {
			failed++
		}

		if err := writeValidation(globals, emitter, result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixture(s) invalid", failed, len(c.Files))
	}
	return nil
}

// ObsRoundtripCmd checks the parse/serialize/parse property
type ObsRoundtripCmd struct {
	Files []string `arg:"" type:"path" help:"Fixture files to check"`
}

// Run executes the obs roundtrip command
func (c *ObsRoundtripCmd) Run(globals *Globals) error {
	emitter := globals.emitter()
	failed := 0

	for _, file := range c.Files {
		result := output.ValidationOutput{File: file, Kind: "roundtrip"}

		data, err := os.ReadFile(file)
		if err == nil {
			err = observations.RoundTrip(data)
		}
		if err != nil {
			result.Problems = []string{err.Error()}
			failed++
		}

		if err := writeValidation(globals, emitter, result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fixture(s) failed the round trip", failed, len(c.Files))
	}
	return nil
}

// ObsQueryCmd selects values from a fixture
type ObsQueryCmd struct {
	File string `arg:"" type:"path" help:"Fixture file"`
	Path string `arg:"" help:"gjson path, for example smry.#.key"`
}

// Run executes the obs query command
func (c *ObsQueryCmd) Run(globals *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return outputErrorCommon(globals, "READ_FAILED", err.Error())
	}

	res, err := observations.Query(data, c.Path)
	if errors.Is(err, observations.ErrNoMatch) {
		return outputErrorCommon(globals, "NO_MATCH", err.Error(),
			"Paths use gjson syntax: smry.#.key, smry.0.observations.#.date")
	}
	if err != nil {
		return outputErrorCommon(globals, "PARSE_FAILED", err.Error())
	}

	if globals.Format == "ndjson" {
		return globals.emitter().Query(c.File, c.Path, res.Raw)
	}
	if res.IsArray() {
		for _, item := range res.Array() {
			fmt.Fprintln(globals.Stdout, item.String())
		}
		return nil
	}
	_, err = fmt.Fprintln(globals.Stdout, res.String())
	return err
}

// ObsExampleCmd prints an example fixture
type ObsExampleCmd struct{}

// Run executes the obs example command
func (c *ObsExampleCmd) Run(globals *Globals) error {
	_, err := globals.Stdout.Write(embedfiles.ObservationsExample)
	return err
}

// writeValidation prints one validation result in the active format.
func writeValidation(globals *Globals, emitter *output.Emitter, result output.ValidationOutput) error {
	if globals.Format == "ndjson" {
		return emitter.Validation(result)
	}

	if len(result.Problems) == 0 {
		if globals.Quiet {
			return nil
		}
		summary := ""
		if result.Counts != nil {
			summary = fmt.Sprintf(" (%d history vectors, %d keys, %d observations)",
				result.Counts["smryh"], result.Counts["smry"], result.Counts["observations"])
		}
		_, err := fmt.Fprintf(globals.Stdout, "%s %s%s\n", output.StatusIcon("ok"), result.File, summary)
		return err
	}

	fmt.Fprintf(globals.Stdout, "%s %s\n", output.StatusIcon("error"), result.File)
	for _, p := range result.Problems {
		fmt.Fprintf(globals.Stdout, "  %s\n", p)
	}
	return nil
}
