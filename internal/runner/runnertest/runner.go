// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"path"
	"strings"
	"sync"

	"github.com/stevehiehn/win10to8/internal/runner"
)

// Runner returns scripted results keyed by the executable's base name.
// Each key holds a queue of results; the last entry repeats once the
// queue is drained. Unscripted executables exit 0.
type Runner struct {
	mu      sync.Mutex
	scripts map[string][]Reply
	calls   []runner.Invocation
}

// Reply is one scripted outcome.
type Reply struct {
	ExitCode int
	Stdout   string
	Err      error
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{scripts: map[string][]Reply{}}
}

// Script queues replies for the named executable.
func (r *Runner) Script(name string, replies ...Reply) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalize(name)
	r.scripts[key] = append(r.scripts[key], replies...)
	return r
}

// Exit is shorthand for scripting exit codes.
func (r *Runner) Exit(name string, codes ...int) *Runner {
	replies := make([]Reply, len(codes))
	for i, c := range codes {
		replies[i] = Reply{ExitCode: c}
	}
	return r.Script(name, replies...)
}

func (r *Runner) Run(ctx context.Context, inv runner.Invocation) (*runner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, inv)

	key := normalize(inv.Path)
	queue := r.scripts[key]
	if len(queue) == 0 {
		return &runner.Result{}, nil
	}
	reply := queue[0]
	if len(queue) > 1 {
		r.scripts[key] = queue[1:]
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return &runner.Result{ExitCode: reply.ExitCode, Stdout: reply.Stdout}, nil
}

// Calls returns every invocation seen so far.
func (r *Runner) Calls() []runner.Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Invocation(nil), r.calls...)
}

// CallsTo returns the invocations of the named executable.
func (r *Runner) CallsTo(name string) []runner.Invocation {
	var out []runner.Invocation
	for _, c := range r.Calls() {
		if normalize(c.Path) == normalize(name) {
			out = append(out, c)
		}
	}
	return out
}

func normalize(p string) string {
	return strings.ToLower(path.Base(strings.ReplaceAll(p, `\`, "/")))
}
