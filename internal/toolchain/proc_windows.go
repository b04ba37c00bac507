//go:build windows

package toolchain

import "os/exec"

func setProcGroup(cmd *exec.Cmd) {}

// killTree terminates the child. Windows has no process groups in the
// POSIX sense; cmd.exe children die with their console.
func killTree(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
