package build

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/settings"
	"github.com/jorge-barreto/lectern/internal/toolchain"
)

func TestBuildLecture_FullPipeline(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	mock.hook = distHook(fs)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}

	lines := mock.callLines()
	if len(lines) != 2 {
		t.Fatalf("calls = %v", lines)
	}
	if lines[0] != "npm install" {
		t.Fatalf("install line = %q", lines[0])
	}
	if lines[1] != "npm run build -- --base /go-course/intro/" {
		t.Fatalf("build line = %q", lines[1])
	}
	if mock.calls[0].Dir != "/course/intro" {
		t.Fatalf("install dir = %q", mock.calls[0].Dir)
	}

	// dist is aggregated under the course output directory.
	data, err := afero.ReadFile(fs, "/course/go-course/intro/index.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>deck</html>" {
		t.Fatalf("got %q", data)
	}
	if ok, _ := afero.Exists(fs, "/course/go-course/intro/assets/app.js"); !ok {
		t.Fatal("nested asset was not copied")
	}

	// The manifest and course index follow the build.
	cfg := o.Repo.ReadSlidesConfig()
	if title, ok := cfg.TitleFor("intro"); !ok || title != "Introduction" {
		t.Fatalf("manifest = %+v", cfg)
	}
	index, err := afero.ReadFile(fs, "/course/go-course/index.html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `<a href="./intro/">Introduction</a>`) {
		t.Fatalf("index = %q", index)
	}
}

func TestBuildLecture_SkipsInstallWhenModulesPresent(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	afero.WriteFile(fs, "/course/intro/node_modules/.keep", nil, 0644)
	mock.hook = distHook(fs)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	lines := mock.callLines()
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "npm run build") {
		t.Fatalf("calls = %v", lines)
	}
}

func TestBuildLecture_MissingLecture(t *testing.T) {
	o, mock, _ := newTestOrchestrator(t)

	err := o.BuildLecture(context.Background(), "ghost")
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindLectureNotFound {
		t.Fatalf("err = %v", err)
	}
	if len(mock.callLines()) != 0 {
		t.Fatalf("runner was called: %v", mock.callLines())
	}
}

func TestBuildLecture_InstallFailureClassified(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	mock.results["npm install"] = toolchain.Result{
		Success:  false,
		ExitCode: 127,
		Stderr:   "sh: npm: command not found",
	}

	err := o.BuildLecture(context.Background(), "intro")
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindNPMNotFound {
		t.Fatalf("err = %v", err)
	}
	if be.ExitCode != 127 {
		t.Fatalf("ExitCode = %d", be.ExitCode)
	}
	if len(mock.callLines()) != 1 {
		t.Fatalf("build ran after failed install: %v", mock.callLines())
	}
	if ok, _ := afero.DirExists(fs, "/course/go-course/intro"); ok {
		t.Fatal("output dir created despite failed install")
	}
}

func TestBuildLecture_BuildFailureStopsAggregation(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	mock.results["npm run build"] = toolchain.Result{
		Success:  false,
		ExitCode: 1,
		Stderr:   "Error: failed to resolve theme",
	}

	err := o.BuildLecture(context.Background(), "intro")
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindBuildFailed {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(be.Message, "failed to resolve theme") {
		t.Fatalf("Message = %q", be.Message)
	}
	if ok, _ := afero.DirExists(fs, "/course/go-course/intro"); ok {
		t.Fatal("output dir created despite failed build")
	}
}

func TestBuildLecture_TimeoutClassified(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	mock.results["npm run build"] = toolchain.Result{
		ExitCode: -1,
		Err:      errors.New("command timed out after 5m0s: npm run build"),
	}

	err := o.BuildLecture(context.Background(), "intro")
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindTimeout {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildLecture_NoCourseName(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/course", 0755)
	mock := newMockRunner()
	o := &Orchestrator{
		Repo:     course.NewRepository(fs, "/course", nil),
		Fs:       fs,
		Runner:   mock,
		Settings: settings.Default(),
	}
	seedLecture(t, fs, "intro", "Introduction")

	err := o.BuildLecture(context.Background(), "intro")
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindBuildFailed {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(be.Message, "course name") {
		t.Fatalf("Message = %q", be.Message)
	}
	// The install step still ran; only the base path derivation failed.
	if len(mock.callLines()) != 1 {
		t.Fatalf("calls = %v", mock.callLines())
	}
}

func TestBuildLecture_MissingDistWarnsAndSucceeds(t *testing.T) {
	o, _, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	var out bytes.Buffer
	o.Out = &out

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "no dist") {
		t.Fatalf("out = %q", out.String())
	}
	// An empty output directory marks the attempt.
	if ok, _ := afero.DirExists(fs, "/course/go-course/intro"); !ok {
		t.Fatal("output dir missing")
	}
}

func TestBuildLecture_ClearsStaleOutput(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	afero.WriteFile(fs, "/course/go-course/intro/stale.txt", []byte("old"), 0644)
	mock.hook = distHook(fs)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.Exists(fs, "/course/go-course/intro/stale.txt"); ok {
		t.Fatal("stale file survived the rebuild")
	}
	if ok, _ := afero.Exists(fs, "/course/go-course/intro/index.html"); !ok {
		t.Fatal("fresh output missing")
	}
}

func TestBuildLecture_TitleReconciliation(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "New Title")
	mock.hook = distHook(fs)
	afero.WriteFile(fs, "/course/go-course/slides.json",
		[]byte(`{"slides": [{"name": "intro", "title": "Old Title"}, {"name": "channels", "title": "Channels"}]}`), 0644)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	cfg := o.Repo.ReadSlidesConfig()
	if len(cfg.Slides) != 2 {
		t.Fatalf("manifest = %+v", cfg)
	}
	if cfg.Slides[0].Title != "New Title" {
		t.Fatalf("title = %q", cfg.Slides[0].Title)
	}
	if cfg.Slides[1].Name != "channels" {
		t.Fatalf("order lost: %+v", cfg.Slides)
	}
}

func TestBuildLecture_BadFrontmatterDoesNotFailBuild(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	afero.WriteFile(fs, "/course/intro/slides.md", []byte("# No frontmatter here\n"), 0644)
	mock.hook = distHook(fs)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := afero.Exists(fs, "/course/go-course/intro/index.html"); !ok {
		t.Fatal("output missing")
	}
}

func TestBuildLecture_WritesRunLog(t *testing.T) {
	o, mock, fs := newTestOrchestrator(t)
	seedLecture(t, fs, "intro", "Introduction")
	mock.hook = distHook(fs)

	if err := o.BuildLecture(context.Background(), "intro"); err != nil {
		t.Fatal(err)
	}
	entries, err := afero.ReadDir(fs, "/course/.lectern/logs")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("log entries = %d", len(entries))
	}
	data, err := afero.ReadFile(fs, "/course/.lectern/logs/"+entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	log := string(data)
	if !strings.Contains(log, "build intro started") {
		t.Fatalf("log = %q", log)
	}
	// Streamed toolchain output lands in the same log.
	if !strings.Contains(log, "mock output") {
		t.Fatalf("log = %q", log)
	}
}
