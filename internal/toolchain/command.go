package toolchain

import "strings"

// PackageManager names the JavaScript package manager driving lecture
// builds.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
)

// Valid reports whether pm is a supported package manager.
func (pm PackageManager) Valid() bool {
	return pm == NPM || pm == PNPM
}

// InstallLine returns the dependency install command.
func (pm PackageManager) InstallLine() string {
	return string(pm) + " install"
}

// RunLine returns the command for a package.json script. npm needs the
// extra -- so flags reach the script instead of npm itself.
func (pm PackageManager) RunLine(script string, args ...string) string {
	parts := []string{string(pm), "run", script}
	if pm == NPM && len(args) > 0 {
		parts = append(parts, "--")
	}
	parts = append(parts, args...)
	return strings.Join(parts, " ")
}
