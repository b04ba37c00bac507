package settings

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Load(fs, "/course")
	if err != nil {
		t.Fatal(err)
	}
	if s.PackageManager != "npm" {
		t.Fatalf("PackageManager = %q, want npm", s.PackageManager)
	}
	if s.BuildTimeout != 5 {
		t.Fatalf("BuildTimeout = %d, want 5", s.BuildTimeout)
	}
	if !s.Open {
		t.Fatal("Open = false, want true by default")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "package-manager: pnpm\nbuild-timeout: 10\ndev-port: 3030\nopen: false\n"
	afero.WriteFile(fs, "/course/.lectern.yaml", []byte(content), 0644)

	s, err := Load(fs, "/course")
	if err != nil {
		t.Fatal(err)
	}
	if s.PackageManager != "pnpm" {
		t.Fatalf("PackageManager = %q", s.PackageManager)
	}
	if s.BuildTimeout != 10 {
		t.Fatalf("BuildTimeout = %d", s.BuildTimeout)
	}
	if s.DevPort != 3030 {
		t.Fatalf("DevPort = %d", s.DevPort)
	}
	if s.Open {
		t.Fatal("Open = true, want false")
	}
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/course/.lectern.yaml", []byte("package-manager: pnpm\n"), 0644)

	s, err := Load(fs, "/course")
	if err != nil {
		t.Fatal(err)
	}
	if s.PackageManager != "pnpm" {
		t.Fatalf("PackageManager = %q", s.PackageManager)
	}
	if s.BuildTimeout != 5 {
		t.Fatalf("BuildTimeout = %d, want default 5", s.BuildTimeout)
	}
	if !s.Open {
		t.Fatal("Open = false, want default true")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/course/.lectern.yaml", []byte("package-manager: [oops\n"), 0644)

	if _, err := Load(fs, "/course"); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_UnknownPackageManager(t *testing.T) {
	s := Default()
	s.PackageManager = "yarn"
	if err := Validate(&s); err == nil || !strings.Contains(err.Error(), "package-manager") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_NegativeTimeout(t *testing.T) {
	s := Default()
	s.BuildTimeout = -1
	if err := Validate(&s); err == nil || !strings.Contains(err.Error(), "build-timeout") {
		t.Fatalf("got %v", err)
	}
}

func TestValidate_PortRange(t *testing.T) {
	s := Default()
	s.DevPort = 70000
	if err := Validate(&s); err == nil || !strings.Contains(err.Error(), "dev-port") {
		t.Fatalf("got %v", err)
	}
}

func TestTimeout_ZeroDisables(t *testing.T) {
	s := Default()
	s.BuildTimeout = 0
	if s.Timeout() != 0 {
		t.Fatalf("Timeout = %v, want 0", s.Timeout())
	}
	s.BuildTimeout = 5
	if s.Timeout() != 5*time.Minute {
		t.Fatalf("Timeout = %v", s.Timeout())
	}
}
