package course

import (
	"fmt"
	"path/filepath"
)

// File and directory names a course is recognized by.
const (
	ConfigFileName   = "course.config.json"
	SlidesConfigName = "slides.json"
	SlidesSourceName = "slides.md"
	PackageJSONName  = "package.json"
	ModulesDirName   = "node_modules"
	DistDirName      = "dist"
	IndexFileName    = "index.html"
	InternalDirName  = ".lectern"

	logsDirName = "logs"
)

// ConfigPath returns the course identity file path.
func (r *Repository) ConfigPath() string {
	return filepath.Join(r.root, ConfigFileName)
}

// LectureDir returns the source directory for a lecture.
func (r *Repository) LectureDir(name string) string {
	return filepath.Join(r.root, name)
}

// SlidesSourcePath returns the slides source file for a lecture.
func (r *Repository) SlidesSourcePath(name string) string {
	return filepath.Join(r.root, name, SlidesSourceName)
}

// OutputDir returns the aggregated output directory, named after the
// course. ok is false while the course name is unknown.
func (r *Repository) OutputDir() (string, bool) {
	name := r.CourseName()
	if name == "" {
		return "", false
	}
	return filepath.Join(r.root, name), true
}

// LectureOutputDir returns where a lecture's built site is aggregated.
func (r *Repository) LectureOutputDir(name string) (string, bool) {
	out, ok := r.OutputDir()
	if !ok {
		return "", false
	}
	return filepath.Join(out, name), true
}

// InternalDir returns the tool-owned directory at the course root.
func (r *Repository) InternalDir() string {
	return filepath.Join(r.root, InternalDirName)
}

// LogsDir returns where per-run build logs are kept.
func (r *Repository) LogsDir() string {
	return filepath.Join(r.InternalDir(), logsDirName)
}

// EnsureInternalDirs creates the tool-owned directory tree.
func (r *Repository) EnsureInternalDirs() error {
	for _, d := range []string{r.InternalDir(), r.LogsDir()} {
		if err := r.fs.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
	}
	return nil
}

// BuildLogPath returns the log file for one build run of a lecture.
func (r *Repository) BuildLogPath(lecture, runID string) string {
	return filepath.Join(r.LogsDir(), fmt.Sprintf("%s-%s.log", lecture, runID))
}
