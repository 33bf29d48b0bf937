package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/resdev/eclman/internal/config"
	"github.com/resdev/eclman/internal/output"
	"github.com/resdev/eclman/internal/release"
	"github.com/resdev/eclman/internal/viewer"
	"golang.org/x/sync/errgroup"
)

// DoctorCmd checks system requirements and configuration
type DoctorCmd struct{}

// checkResult represents a single diagnostic check
type checkResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// doctorReport is the complete diagnostic report
type doctorReport struct {
	Type          string        `json:"type"`
	SchemaVersion int           `json:"schemaVersion"`
	Timestamp     string        `json:"timestamp"`
	Checks        []checkResult `json:"checks"`
	AllPassed     bool          `json:"all_passed"`
	ErrorCount    int           `json:"error_count"`
	WarnCount     int           `json:"warn_count"`
}

// Run executes the doctor command
func (c *DoctorCmd) Run(globals *Globals) error {
	ctx, cancel := globals.clock().WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	checkers := []func(context.Context) checkResult{
		func(context.Context) checkResult { return c.checkECLPath(globals) },
		func(ctx context.Context) checkResult { return c.checkReportCommand(ctx, globals) },
		func(ctx context.Context) checkResult { return c.checkManual(ctx, globals) },
		func(context.Context) checkResult { return c.checkViewers(globals) },
		func(context.Context) checkResult { return c.checkSimulators(globals) },
		func(context.Context) checkResult { return c.checkConfig(globals) },
	}

	// Checks are independent; each writes its own slot.
	checks := make([]checkResult, len(checkers))
	group, gctx := errgroup.WithContext(ctx)
	for i, check := range checkers {
		group.Go(func() error {
			checks[i] = check(gctx)
			return nil
		})
	}
	_ = group.Wait()

	errorCount := 0
	warnCount := 0
	for _, check := range checks {
		if check.Status == "error" {
			errorCount++
		} else if check.Status == "warning" {
			warnCount++
		}
	}

	report := doctorReport{
		Type:          "doctor",
		SchemaVersion: output.SchemaVersion,
		Timestamp:     globals.clock().Now().UTC().Format(time.RFC3339),
		Checks:        checks,
		AllPassed:     errorCount == 0,
		ErrorCount:    errorCount,
		WarnCount:     warnCount,
	}

	if globals.Format == "ndjson" {
		encoder := json.NewEncoder(globals.Stdout)
		return encoder.Encode(report)
	}

	fmt.Fprintln(globals.Stdout, output.Styles.Header.Render("eclman doctor"))
	fmt.Fprintln(globals.Stdout)

	for _, check := range checks {
		fmt.Fprintf(globals.Stdout, "%s %s\n", output.StatusIcon(check.Status), check.Name)
		if check.Message != "" {
			fmt.Fprintf(globals.Stdout, "  %s\n", check.Message)
		}
		if check.Details != "" {
			fmt.Fprintf(globals.Stdout, "  %s\n", output.Styles.Muted.Render(check.Details))
		}
	}

	fmt.Fprintln(globals.Stdout)
	if errorCount == 0 && warnCount == 0 {
		fmt.Fprintln(globals.Stdout, "All checks passed!")
	} else {
		fmt.Fprintf(globals.Stdout, "Errors: %d, Warnings: %d\n", errorCount, warnCount)
	}

	return nil
}

func (c *DoctorCmd) checkECLPath(globals *Globals) checkResult {
	root := globals.cfg().ECLPath
	if root == "" {
		return checkResult{
			Name:    "ECLPATH",
			Status:  "error",
			Message: "ECLPATH is not set",
			Details: "export ECLPATH=/path/to/releases",
		}
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return checkResult{
			Name:    "ECLPATH",
			Status:  "error",
			Message: "ECLPATH is not a directory",
			Details: root,
		}
	}

	return checkResult{
		Name:    "ECLPATH",
		Status:  "ok",
		Message: root,
	}
}

func (c *DoctorCmd) checkReportCommand(ctx context.Context, globals *Globals) checkResult {
	mgr := globals.releaseManager()
	command := mgr.Command()
	name := "Version report"

	path, err := exec.LookPath(command[0])
	if err != nil {
		return checkResult{
			Name:    name,
			Status:  "warning",
			Message: fmt.Sprintf("%s not found; release %s is assumed", command[0], mgr.DefaultVersionLiteral()),
			Details: "Put the vendor tools on PATH or set release.report_command in the config file",
		}
	}

	versions, err := mgr.ReportVersions(ctx)
	if err != nil && len(versions) == 0 {
		return checkResult{
			Name:    name,
			Status:  "warning",
			Message: "report command failed",
			Details: err.Error(),
		}
	}
	if len(versions) == 0 {
		return checkResult{
			Name:    name,
			Status:  "warning",
			Message: fmt.Sprintf("no releases reported; release %s is assumed", mgr.DefaultVersionLiteral()),
			Details: path,
		}
	}

	return checkResult{
		Name:    name,
		Status:  "ok",
		Message: fmt.Sprintf("%d release(s), latest %s", len(versions), versions[0]),
		Details: strings.Join(command, " "),
	}
}

func (c *DoctorCmd) checkManual(ctx context.Context, globals *Globals) checkResult {
	root := globals.cfg().ECLPath
	if root == "" {
		return checkResult{
			Name:    "Manual",
			Status:  "warning",
			Message: "skipped: ECLPATH is not set",
		}
	}

	mgr := globals.releaseManager()
	res, err := mgr.Resolve(ctx, "")
	if err != nil {
		return checkResult{
			Name:    "Manual",
			Status:  "error",
			Message: "could not resolve a release",
			Details: err.Error(),
		}
	}

	path := mgr.ManualPath(root, res.Version)
	if !release.FileExists(path) {
		return checkResult{
			Name:    "Manual",
			Status:  "error",
			Message: fmt.Sprintf("could not find manuals for version %s", res.Version),
			Details: path,
		}
	}

	return checkResult{
		Name:    "Manual",
		Status:  "ok",
		Message: fmt.Sprintf("%s (%s)", res.Version, res.Source),
		Details: path,
	}
}

func (c *DoctorCmd) checkViewers(globals *Globals) checkResult {
	candidates := globals.viewerCandidates()
	selected, err := viewer.Select(candidates)
	if err != nil {
		names := make([]string, 0, len(candidates))
		for _, cand := range candidates {
			names = append(names, cand.Path)
		}
		return checkResult{
			Name:    "PDF viewer",
			Status:  "error",
			Message: err.Error(),
			Details: "Looked for: " + strings.Join(names, ", "),
		}
	}

	return checkResult{
		Name:    "PDF viewer",
		Status:  "ok",
		Message: selected.Name,
		Details: selected.Path,
	}
}

func (c *DoctorCmd) checkSimulators(globals *Globals) checkResult {
	found := globals.locator().Available()
	if len(found) == 0 {
		return checkResult{
			Name:    "Simulators",
			Status:  "warning",
			Message: "No reservoir simulator found (optional)",
			Details: "Needed only for running decks locally",
		}
	}

	parts := make([]string, 0, len(found))
	for _, s := range found {
		parts = append(parts, s.Kind+": "+s.Path)
	}
	return checkResult{
		Name:    "Simulators",
		Status:  "ok",
		Message: fmt.Sprintf("%d found", len(found)),
		Details: strings.Join(parts, ", "),
	}
}

func (c *DoctorCmd) checkConfig(globals *Globals) checkResult {
	configPath := globals.ConfigFile
	if configPath == "" {
		configPath = config.ConfigFile()
	}
	if configPath == "" {
		return checkResult{
			Name:    "Config",
			Status:  "ok",
			Message: "Using defaults (no config file)",
			Details: "Create with: eclman config generate > ~/.eclman.yaml",
		}
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return checkResult{
			Name:    "Config",
			Status:  "error",
			Message: "Config file has errors",
			Details: err.Error(),
		}
	}

	absPath, _ := filepath.Abs(configPath)
	return checkResult{
		Name:    "Config",
		Status:  "ok",
		Message: fmt.Sprintf("Loaded from: %s", absPath),
		Details: fmt.Sprintf("Format: %s, Viewers: %d", cfg.Format, len(cfg.Viewers)),
	}
}
