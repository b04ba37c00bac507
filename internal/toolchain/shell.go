package toolchain

import "runtime"

// Shell turns a command line into an argv for the platform shell.
type Shell interface {
	Name() string
	Wrap(line string) (string, []string)
}

// DetectShell returns the shell for the current platform.
func DetectShell() Shell {
	if runtime.GOOS == "windows" {
		return cmdShell{}
	}
	return shShell{}
}

type shShell struct{}

func (shShell) Name() string {
	return "sh"
}

func (shShell) Wrap(line string) (string, []string) {
	return "sh", []string{"-c", line}
}

type cmdShell struct{}

func (cmdShell) Name() string {
	return "cmd"
}

func (cmdShell) Wrap(line string) (string, []string) {
	return "cmd", []string{"/C", line}
}
