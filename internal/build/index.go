package build

import (
	_ "embed"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/ux"
)

//go:embed templates/index.html
var defaultIndexTemplate string

// lecturesMarker is replaced with the rendered lecture list.
const lecturesMarker = "<!-- LECTURES -->"

// RegenerateIndex rewrites the aggregated index.html from the manifest.
func (o *Orchestrator) RegenerateIndex() error {
	return o.regenerateIndex(ux.NewSink(o.out()))
}

func (o *Orchestrator) regenerateIndex(sink *ux.Sink) error {
	out, ok := o.Repo.OutputDir()
	if !ok {
		sink.Line("index: course name unknown, nothing to render")
		return nil
	}
	tpl, err := o.loadIndexTemplate()
	if err != nil {
		sink.Line("index: template unavailable: %v", err)
		return nil
	}

	var entries []course.LectureEntry
	if cfg := o.Repo.ReadSlidesConfig(); cfg != nil {
		entries = cfg.Slides
	}
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		title := e.Title
		if title == "" {
			title = e.Name
		}
		items = append(items, fmt.Sprintf(`<li><a href="./%s/">%s</a></li>`,
			html.EscapeString(e.Name), html.EscapeString(title)))
	}

	doc := strings.Replace(tpl, lecturesMarker, strings.Join(items, "\n      "), 1)
	if err := o.Fs.MkdirAll(out, 0755); err != nil {
		return err
	}
	if err := course.WriteFileAtomic(o.Fs, filepath.Join(out, course.IndexFileName), []byte(doc), 0644); err != nil {
		return err
	}
	sink.Line("index rendered with %d lectures", len(items))
	return nil
}

// loadIndexTemplate prefers a course-supplied template under the
// internal directory over the built-in one.
func (o *Orchestrator) loadIndexTemplate() (string, error) {
	custom := filepath.Join(o.Repo.InternalDir(), course.IndexFileName)
	ok, _ := afero.Exists(o.Fs, custom)
	if !ok {
		return defaultIndexTemplate, nil
	}
	data, err := afero.ReadFile(o.Fs, custom)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", custom, err)
	}
	if !strings.Contains(string(data), lecturesMarker) {
		return "", fmt.Errorf("%s lacks the %s marker", custom, lecturesMarker)
	}
	return string(data), nil
}
