package action

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// ImportTask implements task.import: create a scheduled task from an XML
// definition with schtasks. The task name defaults to the file's base name.
type ImportTask struct{}

func taskName(req Request, file string) string {
	if name := req.Params["name"]; name != "" {
		return name
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (a *ImportTask) invocation(name, file string) runner.Invocation {
	return runner.Invocation{
		Path:     "schtasks",
		Args:     []string{"/create", "/tn", name, "/xml", file, "/f"},
		Elevate:  true,
		NoWindow: true,
	}
}

func (a *ImportTask) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	file := localPath(req.Params["file"])
	base := filepath.Base(file)
	if !fileExists(file) {
		msg := fmt.Sprintf("Task file not found: %s", base)
		env.notify(pipeline.Warning, "Warning", msg)
		return pipeline.Skip(msg)
	}

	res, err := env.Runner.Run(ctx, a.invocation(taskName(req, file), file))
	if err != nil {
		env.notify(pipeline.Warning, "Task Import Error", fmt.Sprintf("Error importing task %s: %v", base, err))
		return pipeline.Fail(insterrors.KindOf(err), err.Error())
	}
	if res.ExitCode != 0 {
		msg := fmt.Sprintf("Error importing task: %s", base)
		env.notify(pipeline.Warning, "Task Import Error", msg)
		sr := pipeline.Fail(insterrors.NonZeroExit, msg)
		sr.ExitCode = res.ExitCode
		return sr
	}
	return pipeline.Succeed(fmt.Sprintf("imported task %s", taskName(req, file)))
}

func (a *ImportTask) DryRun(req Request) string {
	file := localPath(req.Params["file"])
	return "Would run elevated: " + a.invocation(taskName(req, file), file).String()
}
