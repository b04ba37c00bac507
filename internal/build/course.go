package build

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jorge-barreto/lectern/internal/ux"
)

// BuildCourse builds every lecture in the course, continuing past
// individual failures and summarizing at the end. The returned error
// names the lectures that failed.
func (o *Orchestrator) BuildCourse(ctx context.Context) error {
	names := o.Repo.ListLectureDirectories()
	if len(names) == 0 {
		ux.Warnf(o.out(), "no lectures to build")
		return nil
	}

	start := time.Now()
	var failed []string
	for i, name := range names {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ux.Headerf(o.out(), "Lecture %d/%d: %s", i+1, len(names), name)
		if err := o.BuildLecture(ctx, name); err != nil {
			failed = append(failed, name)
		}
	}

	elapsed := formatDuration(time.Since(start))
	if len(failed) > 0 {
		ux.Failf(o.out(), "%d/%d lectures built in %s; failed: %s",
			len(names)-len(failed), len(names), elapsed, strings.Join(failed, ", "))
		return fmt.Errorf("%d of %d lectures failed: %s", len(failed), len(names), strings.Join(failed, ", "))
	}
	ux.Successf(o.out(), "all %d lectures built in %s", len(names), elapsed)
	return nil
}
