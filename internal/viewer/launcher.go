package viewer

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/resdev/eclman/internal/logging"
	"go.uber.org/zap"
)

// Launcher starts viewers as detached background processes
type Launcher struct {
	logger *zap.Logger
}

// NewLauncher creates a launcher
func NewLauncher(logger *zap.Logger) *Launcher {
	return &Launcher{logger: logging.OrNop(logger)}
}

// Launch starts the viewer on file and returns without waiting for it.
// The process is released: it outlives ctx and is never reaped or killed here.
func (l *Launcher) Launch(ctx context.Context, c Candidate, file string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	cmd := exec.Command(c.Path, file)
	detach(cmd)

	l.logger.Debug("starting viewer", zap.String("viewer", c.Path), zap.String("file", file))
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", c.Name, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		l.logger.Warn("failed to release viewer process", zap.Int("pid", pid), zap.Error(err))
	}
	return pid, nil
}
