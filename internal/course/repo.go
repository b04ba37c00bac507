// Package course persists and discovers everything a course keeps on
// disk: its identity file, the lecture manifest, and the lecture source
// directories themselves.
package course

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/ux"
)

// Repository reads and writes the course documents under one root. The
// lock serializes manifest read-modify-write cycles so concurrent
// builds never clobber each other's entries.
type Repository struct {
	fs   afero.Fs
	root string
	sink *ux.Sink
	mu   sync.Mutex
}

// NewRepository returns a Repository over root. Diagnostics go to sink;
// a nil sink discards them.
func NewRepository(fs afero.Fs, root string, sink *ux.Sink) *Repository {
	if sink == nil {
		sink = ux.NewSink(nil)
	}
	return &Repository{fs: fs, root: root, sink: sink}
}

// Root returns the course root directory.
func (r *Repository) Root() string {
	return r.root
}

// IsCourseRoot reports whether the root holds a course config file.
func (r *Repository) IsCourseRoot() bool {
	ok, _ := afero.Exists(r.fs, r.ConfigPath())
	return ok
}

// FindCourseRoot walks up from start until it finds a directory holding
// the course config file.
func FindCourseRoot(fs afero.Fs, start string) (string, error) {
	dir := start
	for {
		if ok, _ := afero.Exists(fs, filepath.Join(dir, ConfigFileName)); ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory (run 'lectern init' first)", ConfigFileName, start)
		}
		dir = parent
	}
}
