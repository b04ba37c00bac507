package build

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/toolchain"
	"github.com/jorge-barreto/lectern/internal/ux"
)

// StartDevServer launches a lecture's dev server attached to the
// caller's terminal and returns the running process without waiting.
func (o *Orchestrator) StartDevServer(ctx context.Context, name string) (*exec.Cmd, error) {
	if !o.Repo.LectureExists(name) {
		return nil, &Error{
			Kind:     KindLectureNotFound,
			Lecture:  name,
			Message:  fmt.Sprintf("no %q directory with a %s file", name, course.SlidesSourceName),
			ExitCode: -1,
		}
	}

	var args []string
	if o.Settings.DevPort > 0 {
		args = append(args, "--port", strconv.Itoa(o.Settings.DevPort))
	}
	if o.Settings.Open {
		args = append(args, "--open")
	}
	spec := toolchain.Spec{
		Dir:  o.Repo.LectureDir(name),
		Line: o.pm().RunLine("dev", args...),
		Env:  o.buildEnv(name, o.Repo.CourseName()),
	}

	ux.Infof(o.out(), "starting dev server: %s", spec.Line)
	cmd, err := o.Runner.Start(ctx, spec)
	if err != nil {
		return nil, o.classifier().Classify(name, toolchain.Result{ExitCode: -1, Err: err})
	}
	return cmd, nil
}
