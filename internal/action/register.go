package action

import (
	"context"
	"fmt"
	"path/filepath"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// RegisterDLL implements dll.register through regsvr32.
type RegisterDLL struct{}

func (a *RegisterDLL) invocation(path string) runner.Invocation {
	return runner.Invocation{Path: "regsvr32", Args: []string{"/s", path}, Elevate: true, NoWindow: true}
}

func (a *RegisterDLL) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	path := localPath(req.Params["path"])
	name := filepath.Base(path)
	if !fileExists(path) {
		msg := fmt.Sprintf("DLL not found: %s", path)
		env.notify(pipeline.Warning, "Registration Error", msg)
		return pipeline.Skip(msg)
	}

	res, err := env.Runner.Run(ctx, a.invocation(path))
	if err != nil {
		env.notify(pipeline.Error, "Registration Error", fmt.Sprintf("Error registering DLL: %v", err))
		return pipeline.Fail(insterrors.KindOf(err), err.Error())
	}
	if res.ExitCode != 0 {
		msg := fmt.Sprintf("Error registering %s", name)
		env.notify(pipeline.Warning, "Registration Error", msg)
		sr := pipeline.Fail(insterrors.NonZeroExit, msg)
		sr.ExitCode = res.ExitCode
		return sr
	}
	return pipeline.Succeed(fmt.Sprintf("registered %s", name))
}

func (a *RegisterDLL) DryRun(req Request) string {
	return "Would run elevated: " + a.invocation(localPath(req.Params["path"])).String()
}
