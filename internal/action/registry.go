package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// Request carries a step's resolved parameters.
type Request struct {
	Params map[string]string
	Args   []string
}

// Env is what an action may touch while it runs.
type Env struct {
	StepID   string
	Runner   runner.Runner
	Observer pipeline.Observer
	Log      *log.Entry
}

// Action is the interface for built-in step kinds.
type Action interface {
	Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult
	DryRun(req Request) string
}

var registry = map[string]Action{}

func init() {
	registry["copy.tree"] = &CopyTree{}
	registry["installer.run"] = &RunInstaller{}
	registry["symbols.fetch"] = &FetchSymbols{}
	registry["dll.register"] = &RegisterDLL{}
	registry["task.import"] = &ImportTask{}
	registry["registry.import"] = &ImportRegistry{}
}

// Get returns an action by name.
func Get(name string) (Action, error) {
	a, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// Known returns true if the action name is registered.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists registered actions in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Env) logger() *log.Entry {
	if e.Log != nil {
		return e.Log
	}
	return log.WithField("step", e.StepID)
}

// notify raises a user-facing notice and mirrors it into the log.
func (e *Env) notify(sev pipeline.Severity, title, msg string) {
	entry := e.logger().WithField("notice", title)
	switch sev {
	case pipeline.Error:
		entry.Error(msg)
	case pipeline.Warning:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
	if e.Observer != nil {
		e.Observer.Notice(pipeline.Notice{Step: e.StepID, Severity: sev, Title: title, Message: msg})
	}
}

// localPath turns a manifest path into a native one.
func localPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
