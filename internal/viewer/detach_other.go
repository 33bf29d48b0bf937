//go:build !unix

package viewer

import "os/exec"

func detach(cmd *exec.Cmd) {}
