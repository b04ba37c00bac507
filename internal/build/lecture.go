package build

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/frontmatter"
	"github.com/jorge-barreto/lectern/internal/toolchain"
	"github.com/jorge-barreto/lectern/internal/ux"
)

// BuildLecture runs the full pipeline for one lecture: dependencies,
// static build against the course base path, aggregation into the
// output directory, manifest reconciliation, index refresh.
func (o *Orchestrator) BuildLecture(ctx context.Context, name string) error {
	runID := shortRunID()
	sink, logFile := o.openRunLog(name, runID)
	if logFile != nil {
		defer logFile.Close()
	}
	sink.Line("build %s started (run %s)", name, runID)

	start := time.Now()
	if err := o.buildLecture(ctx, name, sink); err != nil {
		sink.Line("build %s failed: %v", name, err)
		ux.Failf(o.out(), "%v", err)
		if logFile != nil {
			ux.Infof(o.out(), "full log: %s", logFile.Name())
		}
		return err
	}
	sink.Line("build %s finished in %s", name, formatDuration(time.Since(start)))
	ux.Successf(o.out(), "built %s", name)
	return nil
}

func (o *Orchestrator) buildLecture(ctx context.Context, name string, sink *ux.Sink) error {
	// The lecture must exist and carry a slides source.
	if !o.Repo.LectureExists(name) {
		return &Error{
			Kind:     KindLectureNotFound,
			Lecture:  name,
			Message:  fmt.Sprintf("no %q directory with a %s file", name, course.SlidesSourceName),
			ExitCode: -1,
		}
	}
	dir := o.Repo.LectureDir(name)
	courseName := o.Repo.CourseName()
	env := o.buildEnv(name, courseName)

	// Install dependencies when node_modules is absent.
	modules := filepath.Join(dir, course.ModulesDirName)
	if ok, _ := afero.DirExists(o.Fs, modules); !ok {
		sink.Line("installing dependencies with %s", o.pm())
		res := o.Runner.RunStream(ctx, toolchain.Spec{
			Dir:     dir,
			Line:    o.pm().InstallLine(),
			Env:     env,
			Timeout: o.Settings.Timeout(),
		}, streamTo(sink))
		if !res.Success {
			return o.classifier().Classify(name, res)
		}
	} else {
		sink.Line("dependencies already installed")
	}

	// The base path needs the course name.
	if courseName == "" {
		return &Error{
			Kind:     KindBuildFailed,
			Lecture:  name,
			Message:  "course name is not configured; cannot derive the base path",
			ExitCode: -1,
		}
	}

	// Static build rooted at the public base path.
	base := "/" + courseName + "/" + name + "/"
	sink.Line("building with base %s", base)
	res := o.Runner.RunStream(ctx, toolchain.Spec{
		Dir:     dir,
		Line:    o.pm().RunLine("build", "--base", base),
		Env:     env,
		Timeout: o.Settings.Timeout(),
	}, streamTo(sink))
	if !res.Success {
		return o.classifier().Classify(name, res)
	}

	// Aggregate dist into the course output directory. The destination
	// is cleared first so stale files from earlier builds never linger.
	dest, _ := o.Repo.LectureOutputDir(name)
	if err := o.Fs.RemoveAll(dest); err != nil {
		return &Error{Kind: KindBuildFailed, Lecture: name, Message: fmt.Sprintf("clearing %s: %v", dest, err), ExitCode: -1}
	}
	if err := o.Fs.MkdirAll(dest, 0755); err != nil {
		return &Error{Kind: KindBuildFailed, Lecture: name, Message: fmt.Sprintf("creating %s: %v", dest, err), ExitCode: -1}
	}
	dist := filepath.Join(dir, course.DistDirName)
	if ok, _ := afero.DirExists(o.Fs, dist); ok {
		n, err := copyTree(o.Fs, dist, dest)
		if err != nil {
			return &Error{Kind: KindBuildFailed, Lecture: name, Message: fmt.Sprintf("copying %s: %v", course.DistDirName, err), ExitCode: -1}
		}
		sink.Line("copied %d files into %s", n, dest)
	} else {
		sink.Line("warning: build produced no %s directory; output left empty", course.DistDirName)
	}

	// Keep the recorded title and the index in step with the sources.
	// Neither is allowed to fail a build that already produced output.
	if err := o.reconcileTitle(name, sink); err != nil {
		sink.Line("title sync skipped: %v", err)
	}
	if err := o.regenerateIndex(sink); err != nil {
		sink.Line("index refresh skipped: %v", err)
	}
	return nil
}

// reconcileTitle keeps the manifest entry in step with the deck's
// frontmatter title.
func (o *Orchestrator) reconcileTitle(name string, sink *ux.Sink) error {
	fields, _, err := frontmatter.ParseFile(o.Fs, o.Repo.SlidesSourcePath(name))
	if err != nil {
		return err
	}
	title, err := fields.Title()
	if err != nil {
		return err
	}
	if recorded, ok := o.Repo.ReadSlidesConfig().TitleFor(name); ok && recorded == title {
		return nil
	}
	if err := o.Repo.AddOrUpdateLectureEntry(name, title); err != nil {
		return err
	}
	sink.Line("recorded title %q", title)
	return nil
}
