// Package viewer picks and launches a desktop PDF viewer.
package viewer

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/resdev/eclman/internal/domain"
)

// ErrNoViewer is returned when no candidate viewer is executable.
var ErrNoViewer = errors.New("could not find a PDF viewer")

// Candidate is a viewer executable at a fixed location
type Candidate struct {
	Name string
	Path string
}

// DefaultCandidates is the viewer preference order, best first.
var DefaultCandidates = []Candidate{
	{Name: "evince", Path: "/usr/bin/evince"},
	{Name: "okular", Path: "/usr/bin/okular"},
	{Name: "acroread", Path: "/usr/bin/acroread"},
	{Name: "xpdf", Path: "/usr/bin/xpdf"},
}

// DefaultPaths returns the paths of DefaultCandidates in order.
func DefaultPaths() []string {
	paths := make([]string, 0, len(DefaultCandidates))
	for _, c := range DefaultCandidates {
		paths = append(paths, c.Path)
	}
	return paths
}

// CandidatesFromPaths names each path after its base name, keeping order.
func CandidatesFromPaths(paths []string) []Candidate {
	out := make([]Candidate, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		out = append(out, Candidate{Name: filepath.Base(p), Path: p})
	}
	return out
}

// IsExecutable reports whether path is a regular file with an execute bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

// Select returns the first executable candidate.
func Select(candidates []Candidate) (Candidate, error) {
	for _, c := range candidates {
		if IsExecutable(c.Path) {
			return c, nil
		}
	}
	return Candidate{}, ErrNoViewer
}

// Survey reports availability of every candidate and marks the one Select would pick.
func Survey(candidates []Candidate) []domain.ViewerStatus {
	statuses := make([]domain.ViewerStatus, 0, len(candidates))
	selected := false
	for i, c := range candidates {
		exe := IsExecutable(c.Path)
		statuses = append(statuses, domain.ViewerStatus{
			Name:       c.Name,
			Path:       c.Path,
			Executable: exe,
			Selected:   exe && !selected,
			Priority:   i + 1,
		})
		if exe {
			selected = true
		}
	}
	return statuses
}
