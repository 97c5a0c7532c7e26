//go:build !windows
// +build !windows

package subcmd

import (
	"os/exec"
	"syscall"
)

// prepare puts the child in its own process group so terminate reaches
// anything it spawned.
func prepare(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

func terminate(cmd *exec.Cmd) error {
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
}
