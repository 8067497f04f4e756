package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner/runnertest"
)

type recorder struct {
	statuses []string
	notices  []pipeline.Notice
}

func (r *recorder) Status(text string) { r.statuses = append(r.statuses, text) }
func (r *recorder) Notice(n pipeline.Notice) { r.notices = append(r.notices, n) }

func newEnv(t *testing.T) (*Env, *runnertest.Runner, *recorder) {
	t.Helper()
	fake := runnertest.New()
	obs := &recorder{}
	return &Env{StepID: t.Name(), Runner: fake, Observer: obs}, fake, obs
}

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
