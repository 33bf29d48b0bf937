// Package simulator finds reservoir simulator executables on this machine.
package simulator

import (
	"os"
	"path/filepath"

	"github.com/resdev/eclman/internal/domain"
)

// DefaultFlowCandidates are the flow executables to look for, best first.
var DefaultFlowCandidates = []string{"flow", "flowdaily"}

// DefaultExtraPaths are searched after PATH.
var DefaultExtraPaths = []string{"/project/res/x86_64_RH_7/bin"}

// DefaultEclipseMarker exists only where the commercial simulator is installed.
const DefaultEclipseMarker = "/prog/res/ecl/grid"

// EclipseWrapper is the launcher used for the commercial simulator.
const EclipseWrapper = "runeclipse"

// Locator searches for simulator executables
type Locator struct {
	Candidates    []string
	ExtraPaths    []string
	EclipseMarker string

	// PathEnv returns the PATH list; defaults to $PATH.
	PathEnv func() string
}

// NewLocator creates a Locator with the default search setup
func NewLocator() *Locator {
	return &Locator{
		Candidates:    append([]string(nil), DefaultFlowCandidates...),
		ExtraPaths:    append([]string(nil), DefaultExtraPaths...),
		EclipseMarker: DefaultEclipseMarker,
	}
}

func (l *Locator) searchDirs() []string {
	env := os.Getenv("PATH")
	if l.PathEnv != nil {
		env = l.PathEnv()
	}
	dirs := filepath.SplitList(env)
	return append(dirs, l.ExtraPaths...)
}

// FindFlow returns the first candidate, in priority order, present in any
// search directory. Candidate order beats directory order.
func (l *Locator) FindFlow() (string, bool) {
	dirs := l.searchDirs()
	for _, candidate := range l.Candidates {
		for _, dir := range dirs {
			if dir == "" {
				continue
			}
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
	}
	return "", false
}

// FindEclipse returns the wrapper name when the commercial install is present.
// The wrapper itself may be installed without the simulator, hence the marker.
func (l *Locator) FindEclipse() (string, bool) {
	if l.EclipseMarker == "" {
		return "", false
	}
	if _, err := os.Stat(l.EclipseMarker); err != nil {
		return "", false
	}
	return EclipseWrapper, true
}

// Available lists every simulator found.
func (l *Locator) Available() []domain.SimulatorBinary {
	var found []domain.SimulatorBinary
	if path, ok := l.FindFlow(); ok {
		found = append(found, domain.SimulatorBinary{Kind: "flow", Name: filepath.Base(path), Path: path})
	}
	if name, ok := l.FindEclipse(); ok {
		found = append(found, domain.SimulatorBinary{Kind: "eclipse", Name: name, Path: name})
	}
	return found
}
