//go:build !windows

package toolchain

import (
	"os/exec"
	"syscall"
)

// setProcGroup puts the child in its own process group so the whole
// toolchain tree can be signaled at once.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killTree terminates the child's process group.
func killTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
}
