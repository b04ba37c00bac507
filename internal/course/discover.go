package course

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ListLectureDirectories returns the names of lecture source
// directories directly under the course root, sorted. A lecture
// directory is one holding a slides source file; dot-directories and
// the aggregated output directory never qualify. Enumeration failures
// log a diagnostic and yield an empty list.
func (r *Repository) ListLectureDirectories() []string {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		r.sink.Line("listing lectures: %v", err)
		return nil
	}
	courseName := r.CourseName()

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || name == ModulesDirName {
			continue
		}
		if courseName != "" && name == courseName {
			continue
		}
		if ok, _ := afero.Exists(r.fs, filepath.Join(r.root, name, SlidesSourceName)); !ok {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LectureExists reports whether name is a lecture directory holding a
// slides source file.
func (r *Repository) LectureExists(name string) bool {
	ok, _ := afero.Exists(r.fs, r.SlidesSourcePath(name))
	return ok
}
