//go:build unix

package viewer

import (
	"os/exec"
	"syscall"
)

// detach puts the viewer in its own process group so terminal signals
// sent to eclman do not reach it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
