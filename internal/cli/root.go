package cli

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/resdev/eclman/internal/config"
	"github.com/resdev/eclman/internal/logging"
	"github.com/resdev/eclman/internal/manual"
	"github.com/resdev/eclman/internal/output"
	"github.com/resdev/eclman/internal/release"
	"github.com/resdev/eclman/internal/simulator"
	"github.com/resdev/eclman/internal/viewer"
	"go.uber.org/zap"
)

// CLI is the root command structure for eclman
type CLI struct {
	// Global flags. Verbose has no short form: -v is the version override.
	Format  string `short:"f" default:"${config_format}" enum:"text,ndjson" help:"Output format"`
	Quiet   bool   `short:"q" help:"Suppress informational output"`
	Verbose bool   `help:"Show debug output (report command, resolved paths, viewer choice)"`

	// Commands
	Open       OpenCmd       `cmd:"" default:"withargs" help:"Open the simulator manual in a PDF viewer"`
	Path       PathCmd       `cmd:"" help:"Print the path of the manual for a release"`
	Versions   VersionsCmd   `cmd:"" help:"List installed releases and their manuals"`
	Viewers    ViewersCmd    `cmd:"" help:"Show which PDF viewers are available"`
	Pick       PickCmd       `cmd:"" help:"Interactively pick a release and open its manual"`
	Obs        ObsCmd        `cmd:"" help:"Check and query observation fixture files"`
	Grav       GravCmd       `cmd:"" help:"Check gravity/subsidence map configuration files"`
	Simulators SimulatorsCmd `cmd:"" help:"Locate reservoir simulator executables"`
	Examples   ExamplesCmd   `cmd:"" help:"Show usage examples for eclman commands"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	Doctor     DoctorCmd     `cmd:"" help:"Check system requirements and configuration"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
	Update     UpdateCmd     `cmd:"" help:"Show how to upgrade eclman"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format  string
	Quiet   bool
	Verbose bool
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock

	// FlagsSet holds the names of flags given on the command line.
	FlagsSet      map[string]bool
	ConfigFile    string
	ConfigSources map[string]string
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}

	if cfg != nil {
		if g.Format == "" {
			g.Format = cfg.Format
		}
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}
	if g.Format == "" {
		g.Format = "text"
	}

	if g.Quiet && !g.Verbose {
		g.Logger = zap.NewNop()
	} else {
		g.Logger = logging.New(g.Stderr, g.Verbose)
	}
	return g
}

// Debug logs a debug message; shown only in verbose mode
func (g *Globals) Debug(format string, args ...interface{}) {
	g.log().Sugar().Debugf(format, args...)
}

// FlagProvided reports whether a flag was given explicitly
func (g *Globals) FlagProvided(name string) bool {
	return g.FlagsSet != nil && g.FlagsSet[name]
}

func (g *Globals) log() *zap.Logger {
	return logging.OrNop(g.Logger)
}

func (g *Globals) clock() clock.Clock {
	if g.Clock == nil {
		return clock.New()
	}
	return g.Clock
}

func (g *Globals) cfg() *config.Config {
	if g.Config == nil {
		return config.Default()
	}
	return g.Config
}

func (g *Globals) emitter() *output.Emitter {
	return output.NewEmitterWithClock(g.Stdout, g.clock())
}

// releaseManager builds a release.Manager from the effective configuration.
func (g *Globals) releaseManager() *release.Manager {
	rc := g.cfg().Release
	opts := []release.Option{
		release.WithLogger(g.log()),
		release.WithClock(g.clock()),
	}
	if len(rc.ReportCommand) > 0 {
		opts = append(opts, release.WithCommand(rc.ReportCommand...))
	}
	if rc.DefaultVersion != "" {
		opts = append(opts, release.WithDefaultVersion(rc.DefaultVersion))
	}
	if rc.ManualSuffix != "" {
		opts = append(opts, release.WithManualSuffix(rc.ManualSuffix))
	}
	if rc.Timeout > 0 {
		opts = append(opts, release.WithTimeout(rc.Timeout))
	}
	return release.NewManager(opts...)
}

func (g *Globals) viewerCandidates() []viewer.Candidate {
	if paths := g.cfg().Viewers; len(paths) > 0 {
		return viewer.CandidatesFromPaths(paths)
	}
	return viewer.DefaultCandidates
}

func (g *Globals) opener() *manual.Opener {
	return &manual.Opener{
		Root:     g.cfg().ECLPath,
		Releases: g.releaseManager(),
		Viewers:  g.viewerCandidates(),
		Launcher: viewer.NewLauncher(g.log()),
		Logger:   g.log(),
	}
}

func (g *Globals) locator() *simulator.Locator {
	sc := g.cfg().Simulators
	l := simulator.NewLocator()
	if len(sc.Candidates) > 0 {
		l.Candidates = sc.Candidates
	}
	if sc.ExtraPaths != nil {
		l.ExtraPaths = sc.ExtraPaths
	}
	if sc.EclipseMarker != "" {
		l.EclipseMarker = sc.EclipseMarker
	}
	return l
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "ndjson" {
		return globals.emitter().Metadata(Version, Commit)
	}
	_, err := io.WriteString(globals.Stdout, "eclman version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
