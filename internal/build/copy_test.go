package build

import (
	"testing"

	"github.com/spf13/afero"
)

func TestCopyTree_Nested(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/index.html", []byte("root"), 0644)
	afero.WriteFile(fs, "/src/assets/app.js", []byte("js"), 0644)
	afero.WriteFile(fs, "/src/assets/img/logo.svg", []byte("svg"), 0644)

	n, err := copyTree(fs, "/src", "/dst")
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("copied %d files", n)
	}
	for path, want := range map[string]string{
		"/dst/index.html":         "root",
		"/dst/assets/app.js":      "js",
		"/dst/assets/img/logo.svg": "svg",
	} {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if string(data) != want {
			t.Fatalf("%s = %q", path, data)
		}
	}
}

func TestCopyTree_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := copyTree(fs, "/nowhere", "/dst"); err == nil {
		t.Fatal("expected an error")
	}
}
