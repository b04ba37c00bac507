package course

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// LectureEntry records one lecture in the aggregated output.
type LectureEntry struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// SlidesConfig is the manifest the course index is rendered from. Entry
// order is preserved across updates.
type SlidesConfig struct {
	Slides []LectureEntry `json:"slides"`
}

// TitleFor returns the recorded title for name, if any.
func (c *SlidesConfig) TitleFor(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, e := range c.Slides {
		if e.Name == name {
			return e.Title, true
		}
	}
	return "", false
}

func (r *Repository) slidesConfigPath() (string, bool) {
	out, ok := r.OutputDir()
	if !ok {
		return "", false
	}
	return filepath.Join(out, SlidesConfigName), true
}

// ReadSlidesConfig loads the lecture manifest. A manifest that does not
// exist yet is normal and returns nil silently; one that exists but is
// unusable returns nil with a diagnostic.
func (r *Repository) ReadSlidesConfig() *SlidesConfig {
	path, ok := r.slidesConfigPath()
	if !ok {
		r.sink.Line("slides config: course name unknown, cannot locate %s", SlidesConfigName)
		return nil
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.sink.Line("slides config: %v", err)
		}
		return nil
	}
	var cfg SlidesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.sink.Line("slides config: parsing %s: %v", SlidesConfigName, err)
		return nil
	}
	if cfg.Slides == nil {
		r.sink.Line("slides config: %s has no slides list", SlidesConfigName)
		return nil
	}
	return &cfg
}

// WriteSlidesConfig persists the manifest into the aggregated output
// directory, creating the directory if needed.
func (r *Repository) WriteSlidesConfig(cfg *SlidesConfig) error {
	path, ok := r.slidesConfigPath()
	if !ok {
		return fmt.Errorf("course name unknown: cannot write %s", SlidesConfigName)
	}
	if err := r.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(r.fs, path, data, 0644)
}

// AddOrUpdateLectureEntry records name with title in the manifest,
// creating the manifest when absent.
func (r *Repository) AddOrUpdateLectureEntry(name, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.ReadSlidesConfig()
	if cfg == nil {
		cfg = &SlidesConfig{Slides: []LectureEntry{}}
	}
	found := false
	for i := range cfg.Slides {
		if cfg.Slides[i].Name == name {
			cfg.Slides[i].Title = title
			found = true
			break
		}
	}
	if !found {
		cfg.Slides = append(cfg.Slides, LectureEntry{Name: name, Title: title})
	}
	return r.WriteSlidesConfig(cfg)
}

// RemoveLectureEntry drops name from the manifest. A name that is not
// recorded is not an error.
func (r *Repository) RemoveLectureEntry(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg := r.ReadSlidesConfig()
	if cfg == nil {
		return nil
	}
	kept := cfg.Slides[:0]
	for _, e := range cfg.Slides {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	cfg.Slides = kept
	return r.WriteSlidesConfig(cfg)
}
