package build

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/jorge-barreto/lectern/internal/course"
	"github.com/jorge-barreto/lectern/internal/settings"
	"github.com/jorge-barreto/lectern/internal/toolchain"
)

// mockRunner records specs and returns configurable results. A result
// is selected when its key matches the spec's working directory or the
// start of its command line. hook runs after each call to simulate
// toolchain side effects, like producing dist/.
type mockRunner struct {
	mu         sync.Mutex
	calls      []toolchain.Spec
	startCalls []toolchain.Spec
	results    map[string]toolchain.Result
	startErr   error
	hook       func(spec toolchain.Spec)
}

func newMockRunner() *mockRunner {
	return &mockRunner{results: make(map[string]toolchain.Result)}
}

func (m *mockRunner) Run(ctx context.Context, spec toolchain.Spec) toolchain.Result {
	return m.RunStream(ctx, spec, nil)
}

func (m *mockRunner) RunStream(_ context.Context, spec toolchain.Spec, deliver func(toolchain.StreamKind, []byte)) toolchain.Result {
	m.mu.Lock()
	m.calls = append(m.calls, spec)
	m.mu.Unlock()

	if m.hook != nil {
		m.hook(spec)
	}
	if deliver != nil {
		deliver(toolchain.StdoutStream, []byte("mock output\n"))
	}
	for key, res := range m.results {
		if strings.Contains(spec.Dir, key) || strings.HasPrefix(spec.Line, key) {
			return res
		}
	}
	return toolchain.Result{Success: true, ExitCode: 0}
}

func (m *mockRunner) Start(_ context.Context, spec toolchain.Spec) (*exec.Cmd, error) {
	m.mu.Lock()
	m.startCalls = append(m.startCalls, spec)
	m.mu.Unlock()
	return nil, m.startErr
}

func (m *mockRunner) callLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]string, len(m.calls))
	for i, c := range m.calls {
		lines[i] = c.Line
	}
	return lines
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *mockRunner, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	fs.MkdirAll("/course", 0755)
	afero.WriteFile(fs, "/course/course.config.json", []byte(`{"course_name": "go-course"}`), 0644)

	mock := newMockRunner()
	o := &Orchestrator{
		Repo:     course.NewRepository(fs, "/course", nil),
		Fs:       fs,
		Runner:   mock,
		Settings: settings.Default(),
	}
	return o, mock, fs
}

func seedLecture(t *testing.T, fs afero.Fs, name, title string) {
	t.Helper()
	src := fmt.Sprintf("---\ntitle: %s\n---\n\n# %s\n", title, title)
	if err := afero.WriteFile(fs, "/course/"+name+"/slides.md", []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}

// distHook simulates the static build dropping a dist/ tree into the
// lecture directory.
func distHook(fs afero.Fs) func(toolchain.Spec) {
	return func(spec toolchain.Spec) {
		if !strings.Contains(spec.Line, "run build") {
			return
		}
		afero.WriteFile(fs, spec.Dir+"/dist/index.html", []byte("<html>deck</html>"), 0644)
		afero.WriteFile(fs, spec.Dir+"/dist/assets/app.js", []byte("js"), 0644)
	}
}
