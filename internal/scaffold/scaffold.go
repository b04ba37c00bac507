// Package scaffold creates course roots and lecture directories.
package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/slug"
	"github.com/jorge-barreto/lectern/internal/ux"
)

var slidesTemplate = `---
theme: default
title: %s
---

# %s

Press <kbd>space</kbd> for the next slide.

---

## Agenda

- First point
- Second point
`

var packageJSONTemplate = `{
  "name": %s,
  "private": true,
  "scripts": {
    "build": "slidev build",
    "dev": "slidev --open",
    "export": "slidev export"
  },
  "dependencies": {
    "@slidev/cli": "^0.49.0",
    "@slidev/theme-default": "latest",
    "vue": "^3.4.0"
  }
}
`

const gitignoreTemplate = `node_modules/
dist/
`

// InitCourse turns dir into a course root named name. The directory
// must not already be a course.
func InitCourse(fs afero.Fs, dir, name string, out io.Writer) error {
	if err := slug.ValidateCourseName(name); err != nil {
		return err
	}
	repo := course.NewRepository(fs, dir, nil)
	if repo.IsCourseRoot() {
		return fmt.Errorf("%s already exists in %s", course.ConfigFileName, dir)
	}
	if err := repo.WriteCourseConfig(&course.CourseConfig{CourseName: name}); err != nil {
		return fmt.Errorf("writing %s: %w", course.ConfigFileName, err)
	}

	fmt.Fprintf(out, "\n%s%s✓ Initialized course %q%s\n\n", ux.Bold, ux.Green, name, ux.Reset)
	fmt.Fprintf(out, "  Created:\n")
	fmt.Fprintf(out, "    %s%s%s — course metadata\n\n", ux.Cyan, course.ConfigFileName, ux.Reset)
	fmt.Fprintf(out, "  Next steps:\n")
	fmt.Fprintf(out, "    1. Run %slectern new \"My First Lecture\"%s to scaffold a deck\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(out, "    2. Run %slectern dev <lecture>%s to present it live\n", ux.Cyan, ux.Reset)
	fmt.Fprintf(out, "    3. Run %slectern build%s to produce the course site\n\n", ux.Cyan, ux.Reset)
	return nil
}

// NewLecture scaffolds a lecture directory for title and registers it.
// The directory name is derived from the title; an existing directory
// with that name is an error, not a merge.
func NewLecture(repo *course.Repository, fs afero.Fs, title string, out io.Writer) (string, error) {
	name := slug.Generate(title)
	dir := repo.LectureDir(name)
	if ok, _ := afero.Exists(fs, dir); ok {
		return "", fmt.Errorf("lecture %q already exists (from title %q)", name, title)
	}

	files := map[string]string{
		course.SlidesSourceName: fmt.Sprintf(slidesTemplate, strconv.Quote(title), title),
		course.PackageJSONName:  fmt.Sprintf(packageJSONTemplate, strconv.Quote(name)),
		".gitignore":            gitignoreTemplate,
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	for rel, content := range files {
		if err := afero.WriteFile(fs, filepath.Join(dir, rel), []byte(content), 0644); err != nil {
			fs.RemoveAll(dir)
			return "", fmt.Errorf("writing %s: %w", rel, err)
		}
	}
	if err := repo.AddOrUpdateLectureEntry(name, title); err != nil {
		fs.RemoveAll(dir)
		return "", fmt.Errorf("registering lecture: %w", err)
	}

	fmt.Fprintf(out, "\n%s%s✓ Created lecture %q%s\n\n", ux.Bold, ux.Green, name, ux.Reset)
	fmt.Fprintf(out, "  Created:\n")
	fmt.Fprintf(out, "    %s%s/%s%s — deck source\n", ux.Cyan, name, course.SlidesSourceName, ux.Reset)
	fmt.Fprintf(out, "    %s%s/%s%s — toolchain descriptor\n\n", ux.Cyan, name, course.PackageJSONName, ux.Reset)
	fmt.Fprintf(out, "  Next: %slectern dev %s%s\n\n", ux.Cyan, name, ux.Reset)
	return name, nil
}
