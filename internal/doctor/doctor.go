// Package doctor inspects the environment and the course tree and
// reports anything that would break a build.
package doctor

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/frontmatter"
	"github.com/jorge-barreto/lectern/internal/settings"
	"github.com/jorge-barreto/lectern/internal/slug"
	"github.com/jorge-barreto/lectern/internal/ux"
)

// result tracks problems and warnings across checks.
type result struct {
	errors   int
	warnings int
}

func (r *result) addError()   { r.errors++ }
func (r *result) addWarning() { r.warnings++ }

// lookPath is a seam for tests.
var lookPath = exec.LookPath

// Run performs every check and returns an error when problems were
// found, so the CLI exits nonzero.
func Run(repo *course.Repository, fs afero.Fs, out io.Writer) error {
	res := &result{}

	cfg := checkSettings(repo, fs, out, res)
	checkToolchain(cfg, out, res)
	checkCourseConfig(repo, out, res)
	names := checkLectures(repo, fs, out, res)
	checkManifest(repo, names, out, res)

	fmt.Fprintln(out)
	switch {
	case res.errors == 0 && res.warnings == 0:
		ux.Successf(out, "all checks passed")
	case res.errors == 0:
		ux.Warnf(out, "%d warning(s)", res.warnings)
	default:
		ux.Failf(out, "%d problem(s), %d warning(s)", res.errors, res.warnings)
	}
	if res.errors > 0 {
		return fmt.Errorf("doctor found %d problem(s)", res.errors)
	}
	return nil
}

// checkSettings loads .lectern.yaml, falling back to defaults so the
// remaining checks can still run against something coherent.
func checkSettings(repo *course.Repository, fs afero.Fs, out io.Writer, res *result) settings.Settings {
	cfg, err := settings.Load(fs, repo.Root())
	if err != nil {
		ux.Failf(out, "%v", err)
		res.addError()
		return settings.Default()
	}
	ux.Successf(out, "settings: %s, build timeout %dm", cfg.PackageManager, cfg.BuildTimeout)
	return cfg
}

func checkToolchain(cfg settings.Settings, out io.Writer, res *result) {
	for _, bin := range []string{"node", cfg.PackageManager} {
		path, err := lookPath(bin)
		if err != nil {
			ux.Failf(out, "%s: not found on PATH", bin)
			res.addError()
			continue
		}
		ux.Successf(out, "%s: %s", bin, path)
	}
}

func checkCourseConfig(repo *course.Repository, out io.Writer, res *result) {
	cfg := repo.ReadCourseConfig()
	if cfg == nil {
		ux.Failf(out, "%s: missing or unreadable", course.ConfigFileName)
		res.addError()
		return
	}
	if err := slug.ValidateCourseName(cfg.CourseName); err != nil {
		ux.Failf(out, "%v", err)
		res.addError()
		return
	}
	ux.Successf(out, "course: %s", cfg.CourseName)
}

// checkLectures inspects each lecture directory and returns the names
// so the manifest check can reconcile against them.
func checkLectures(repo *course.Repository, fs afero.Fs, out io.Writer, res *result) []string {
	names := repo.ListLectureDirectories()
	if len(names) == 0 {
		ux.Infof(out, "no lectures yet")
		return names
	}
	for _, name := range names {
		dir := repo.LectureDir(name)
		var issues []string
		var notes []string

		if ok, _ := afero.Exists(fs, filepath.Join(dir, course.PackageJSONName)); !ok {
			issues = append(issues, "missing "+course.PackageJSONName)
		}
		fields, _, err := frontmatter.ParseFile(fs, repo.SlidesSourcePath(name))
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", course.SlidesSourceName, err))
		} else if meta, err := frontmatter.Decode(fields); err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", course.SlidesSourceName, err))
		} else if strings.TrimSpace(meta.Title) == "" {
			notes = append(notes, "frontmatter has no title (title sync will be skipped)")
		}
		if ok, _ := afero.DirExists(fs, filepath.Join(dir, course.ModulesDirName)); !ok {
			notes = append(notes, "dependencies not installed (run 'lectern build "+name+"')")
		}
		if built, _ := repo.LectureOutputDir(name); built != "" {
			if ok, _ := afero.DirExists(fs, built); !ok {
				notes = append(notes, "not built")
			}
		}

		switch {
		case len(issues) > 0:
			ux.Failf(out, "%s: %s", name, strings.Join(issues, "; "))
			res.addError()
		case len(notes) > 0:
			ux.Warnf(out, "%s: %s", name, strings.Join(notes, "; "))
			res.addWarning()
		default:
			ux.Successf(out, "%s: ok", name)
		}
	}
	return names
}

// checkManifest reconciles slides.json against the directories found
// on disk, in both directions.
func checkManifest(repo *course.Repository, names []string, out io.Writer, res *result) {
	manifest := repo.ReadSlidesConfig()
	if manifest == nil {
		if len(names) > 0 {
			ux.Warnf(out, "%s: missing (run 'lectern build' to regenerate)", course.SlidesConfigName)
			res.addWarning()
		}
		return
	}

	onDisk := make(map[string]bool, len(names))
	for _, n := range names {
		onDisk[n] = true
	}
	recorded := make(map[string]bool, len(manifest.Slides))
	for _, e := range manifest.Slides {
		recorded[e.Name] = true
		if !onDisk[e.Name] {
			ux.Failf(out, "%s: entry %q has no lecture directory", course.SlidesConfigName, e.Name)
			res.addError()
		}
	}
	for _, n := range names {
		if !recorded[n] {
			ux.Warnf(out, "%s: lecture %q is not registered", course.SlidesConfigName, n)
			res.addWarning()
		}
	}
}
