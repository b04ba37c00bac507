package course

import (
	"encoding/json"
	"strings"

	"github.com/spf13/afero"
)

// CourseConfig identifies a directory tree as a course.
type CourseConfig struct {
	CourseName string `json:"course_name"`
}

// ReadCourseConfig loads the course identity file at the root. Any
// failure to produce a usable config (missing file, bad JSON, blank
// name) logs a diagnostic and returns nil; callers treat nil as "no
// course here".
func (r *Repository) ReadCourseConfig() *CourseConfig {
	data, err := afero.ReadFile(r.fs, r.ConfigPath())
	if err != nil {
		r.sink.Line("course config: %v", err)
		return nil
	}
	var cfg CourseConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.sink.Line("course config: parsing %s: %v", ConfigFileName, err)
		return nil
	}
	if strings.TrimSpace(cfg.CourseName) == "" {
		r.sink.Line("course config: %s has no course_name", ConfigFileName)
		return nil
	}
	return &cfg
}

// WriteCourseConfig persists the course identity file.
func (r *Repository) WriteCourseConfig(cfg *CourseConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(r.fs, r.ConfigPath(), data, 0644)
}

// CourseName returns the configured course name, or "" when the config
// is missing or unusable.
func (r *Repository) CourseName() string {
	if cfg := r.ReadCourseConfig(); cfg != nil {
		return cfg.CourseName
	}
	return ""
}
