// Package settings loads per-course tool settings from the course root.
package settings

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up at the course root.
const FileName = ".lectern.yaml"

type Settings struct {
	PackageManager string `yaml:"package-manager"`
	BuildTimeout   int    `yaml:"build-timeout"` // minutes; 0 disables the limit
	DevPort        int    `yaml:"dev-port"`      // 0 lets the dev server pick
	Open           bool   `yaml:"open"`
}

var validPackageManagers = map[string]bool{
	"npm":  true,
	"pnpm": true,
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{
		PackageManager: "npm",
		BuildTimeout:   5,
		Open:           true,
	}
}

// Load reads FileName from the course root over the defaults. A missing
// file is not an error; a malformed or invalid one is.
func Load(fs afero.Fs, root string) (Settings, error) {
	s := Default()
	path := filepath.Join(root, FileName)
	if ok, _ := afero.Exists(fs, path); !ok {
		return s, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return s, fmt.Errorf("settings: reading %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: parsing %s: %w", FileName, err)
	}
	if err := Validate(&s); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the settings for errors.
func Validate(s *Settings) error {
	if !validPackageManagers[s.PackageManager] {
		return fmt.Errorf("settings: unknown package-manager %q (must be npm or pnpm)", s.PackageManager)
	}
	if s.BuildTimeout < 0 {
		return fmt.Errorf("settings: build-timeout must be >= 0")
	}
	if s.DevPort < 0 || s.DevPort > 65535 {
		return fmt.Errorf("settings: dev-port must be between 0 and 65535")
	}
	return nil
}

// Timeout converts the configured build timeout into a duration. Zero
// means unbounded.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.BuildTimeout) * time.Minute
}
