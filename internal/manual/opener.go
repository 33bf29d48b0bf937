// Package manual locates a release's PDF manual and opens it in a viewer.
package manual

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/resdev/eclman/internal/domain"
	"github.com/resdev/eclman/internal/logging"
	"github.com/resdev/eclman/internal/release"
	"github.com/resdev/eclman/internal/viewer"
	"go.uber.org/zap"
)

// ErrRootUnset is returned when no installation root (ECLPATH) is known.
var ErrRootUnset = errors.New("ECLPATH is not set")

// ManualNotFoundError is returned when the resolved release has no manual on disk.
// RootUnset marks the case where ECLPATH was empty; the error then also
// matches ErrRootUnset.
type ManualNotFoundError struct {
	Version   string
	Path      string
	RootUnset bool
}

func (e *ManualNotFoundError) Error() string {
	return fmt.Sprintf("could not find manuals for version %s", e.Version)
}

func (e *ManualNotFoundError) Unwrap() error {
	if e.RootUnset {
		return ErrRootUnset
	}
	return nil
}

// Resolver picks a release version and maps it to a manual path.
type Resolver interface {
	Resolve(ctx context.Context, override string) (domain.Resolution, error)
	ManualPath(root, version string) string
}

// Launcher starts a viewer on a file without waiting for it.
type Launcher interface {
	Launch(ctx context.Context, c viewer.Candidate, file string) (int, error)
}

// Result describes a located (and possibly opened) manual
type Result struct {
	Version    string               `json:"version"`
	Source     domain.VersionSource `json:"source"`
	Path       string               `json:"path"`
	Viewer     string               `json:"viewer,omitempty"`
	ViewerPath string               `json:"viewer_path,omitempty"`
	PID        int                  `json:"pid,omitempty"`
}

// Opener runs the resolve, locate, select, launch sequence
type Opener struct {
	Root     string
	Releases Resolver
	Viewers  []viewer.Candidate
	Launcher Launcher
	Logger   *zap.Logger
}

// Locate resolves the version and checks that its manual exists.
func (o *Opener) Locate(ctx context.Context, override string) (Result, error) {
	log := logging.OrNop(o.Logger)

	res, err := o.Releases.Resolve(ctx, override)
	if err != nil {
		return Result{}, fmt.Errorf("resolve version: %w", err)
	}

	if o.Root == "" {
		path := o.Releases.ManualPath(string(filepath.Separator), res.Version)
		log.Debug("ECLPATH is not set", zap.String("version", res.Version))
		return Result{Version: res.Version, Source: res.Source, Path: path},
			&ManualNotFoundError{Version: res.Version, Path: path, RootUnset: true}
	}

	path := o.Releases.ManualPath(o.Root, res.Version)
	result := Result{Version: res.Version, Source: res.Source, Path: path}
	log.Debug("resolved manual",
		zap.String("version", res.Version),
		zap.String("source", string(res.Source)),
		zap.String("path", path))

	if !release.FileExists(path) {
		return result, &ManualNotFoundError{Version: res.Version, Path: path}
	}
	return result, nil
}

// Open locates the manual and launches the first available viewer on it.
// Nothing is launched when the manual is missing or no viewer is executable.
func (o *Opener) Open(ctx context.Context, override string) (Result, error) {
	result, err := o.Locate(ctx, override)
	if err != nil {
		return result, err
	}

	c, err := viewer.Select(o.Viewers)
	if err != nil {
		return result, err
	}
	result.Viewer = c.Name
	result.ViewerPath = c.Path

	pid, err := o.Launcher.Launch(ctx, c, result.Path)
	if err != nil {
		return result, err
	}
	result.PID = pid

	logging.OrNop(o.Logger).Debug("opened manual",
		zap.String("version", result.Version),
		zap.String("viewer", c.Name),
		zap.Int("pid", pid))
	return result, nil
}
