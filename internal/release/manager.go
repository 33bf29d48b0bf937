package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/resdev/eclman/internal/domain"
	"github.com/resdev/eclman/internal/logging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultVersion is used when the report command yields no versions.
	DefaultVersion = "2019.3"
	// DefaultManualSuffix is the manual location inside a release directory.
	DefaultManualSuffix = "manuals/bookshelf.pdf"
	// DefaultTimeout bounds the report command.
	DefaultTimeout = 10 * time.Second
)

// DefaultReportCommand asks the vendor launcher which releases are installed.
var DefaultReportCommand = []string{"eclrun", "--report-versions", "eclipse"}

// Manager discovers installed releases and where their manuals live
type Manager struct {
	command        []string
	defaultVersion string
	manualSuffix   string
	timeout        time.Duration
	clock          clock.Clock
	logger         *zap.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithCommand overrides the version report command (program followed by its args).
func WithCommand(args ...string) Option {
	return func(m *Manager) {
		if len(args) > 0 {
			m.command = append([]string(nil), args...)
		}
	}
}

// WithDefaultVersion overrides the fallback version literal.
func WithDefaultVersion(v string) Option {
	return func(m *Manager) {
		if v != "" {
			m.defaultVersion = v
		}
	}
}

// WithManualSuffix overrides the manual path inside a release directory.
func WithManualSuffix(s string) Option {
	return func(m *Manager) {
		if s != "" {
			m.manualSuffix = s
		}
	}
}

// WithTimeout bounds how long the report command may run.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithClock sets the clock used for the report timeout.
func WithClock(c clock.Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logging.OrNop(l)
	}
}

// NewManager creates a new release manager
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		command:        append([]string(nil), DefaultReportCommand...),
		defaultVersion: DefaultVersion,
		manualSuffix:   DefaultManualSuffix,
		timeout:        DefaultTimeout,
		clock:          clock.New(),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DefaultVersionLiteral returns the fallback version.
func (m *Manager) DefaultVersionLiteral() string {
	return m.defaultVersion
}

// Command returns the report command line.
func (m *Manager) Command() []string {
	return append([]string(nil), m.command...)
}

// ReportVersions runs the report command and returns its version tokens,
// latest first. A command that exits non-zero still has its output parsed.
func (m *Manager) ReportVersions(ctx context.Context) ([]string, error) {
	if len(m.command) == 0 {
		return nil, errors.New("no version report command configured")
	}

	ctx, cancel := m.clock.WithTimeout(ctx, m.timeout)
	defer cancel()

	m.logger.Debug("running version report", zap.Strings("command", m.command))

	cmd := exec.CommandContext(ctx, m.command[0], m.command[1:]...)
	cmd.WaitDelay = time.Second
	out, err := cmd.Output()
	versions := ParseVersions(out)
	if err != nil {
		return versions, fmt.Errorf("version report %q failed: %w", m.command[0], err)
	}

	m.logger.Debug("version report finished", zap.Strings("versions", versions))
	return versions, nil
}

// Resolve picks the release version. A non-empty override is returned as is
// and the report command is not run.
func (m *Manager) Resolve(ctx context.Context, override string) (domain.Resolution, error) {
	if override != "" {
		return domain.Resolution{Version: override, Source: domain.VersionSourceFlag}, nil
	}

	versions, err := m.ReportVersions(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Resolution{}, ctxErr
		}
		m.logger.Warn("version report failed", zap.Error(err))
	}

	if len(versions) > 0 {
		return domain.Resolution{Version: versions[0], Source: domain.VersionSourceDetected}, nil
	}

	m.logger.Debug("no versions reported, using default", zap.String("version", m.defaultVersion))
	return domain.Resolution{Version: m.defaultVersion, Source: domain.VersionSourceDefault}, nil
}

// Latest returns the most recent installed version, or the default literal.
func (m *Manager) Latest(ctx context.Context) (string, error) {
	res, err := m.Resolve(ctx, "")
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// ManualPath builds <root>/<version>/<suffix>.
func (m *Manager) ManualPath(root, version string) string {
	return filepath.Join(root, version, filepath.FromSlash(m.manualSuffix))
}

// Installations lists every reported version under root, probing manuals concurrently.
func (m *Manager) Installations(ctx context.Context, root string) ([]domain.Installation, error) {
	versions, err := m.ReportVersions(ctx)
	if err != nil && len(versions) == 0 {
		return nil, err
	}
	if err != nil {
		m.logger.Warn("version report failed", zap.Error(err))
	}

	installs := make([]domain.Installation, len(versions))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(8)
	for i, v := range versions {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := m.ManualPath(root, v)
			installs[i] = domain.Installation{
				Version:      v,
				Root:         filepath.Join(root, v),
				ManualPath:   path,
				ManualExists: FileExists(path),
				Latest:       i == 0,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return installs, nil
}

// FileExists reports whether path is an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
