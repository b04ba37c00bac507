// Package build turns lecture sources into the aggregated course site:
// it drives the JavaScript toolchain, collects the built decks under
// the course output directory, and keeps the manifest and index fresh.
package build

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/settings"
	"github.com/jorge-barreto/lectern/internal/toolchain"
	"github.com/jorge-barreto/lectern/internal/ux"
)

// Orchestrator drives lecture builds. Tests substitute Runner and Fs.
type Orchestrator struct {
	Repo       *course.Repository
	Fs         afero.Fs
	Runner     toolchain.Runner
	Settings   settings.Settings
	Out        io.Writer  // user-facing progress and notifications
	Classifier Classifier // nil means MessageClassifier
}

func (o *Orchestrator) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return io.Discard
}

func (o *Orchestrator) classifier() Classifier {
	if o.Classifier != nil {
		return o.Classifier
	}
	return MessageClassifier{}
}

func (o *Orchestrator) pm() toolchain.PackageManager {
	return toolchain.PackageManager(o.Settings.PackageManager)
}

// openRunLog opens the per-run log file and returns a sink teeing
// progress into both console and file. Log trouble degrades to
// console-only output rather than failing the build.
func (o *Orchestrator) openRunLog(lecture, runID string) (*ux.Sink, afero.File) {
	console := ux.NewSink(o.out())
	if err := o.Repo.EnsureInternalDirs(); err != nil {
		console.Line("run log unavailable: %v", err)
		return console, nil
	}
	path := o.Repo.BuildLogPath(lecture, runID)
	f, err := o.Fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		console.Line("run log unavailable: %v", err)
		return console, nil
	}
	return console.Tee(f), f
}

// buildEnv returns the variables advertised to toolchain scripts.
func (o *Orchestrator) buildEnv(lecture, courseName string) []string {
	return []string{
		"LECTERN_COURSE=" + courseName,
		"LECTERN_LECTURE=" + lecture,
		"LECTERN_ROOT=" + o.Repo.Root(),
	}
}

func streamTo(sink *ux.Sink) func(toolchain.StreamKind, []byte) {
	return func(_ toolchain.StreamKind, p []byte) {
		sink.Write(p)
	}
}

// shortRunID returns a compact unique id naming one build run.
func shortRunID() string {
	return uuid.NewString()[:8]
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
