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

// RunInstaller implements installer.run: launch a bundled setup program
// elevated with its silent-install arguments. Exit code 0 is success.
type RunInstaller struct{}

func (a *RunInstaller) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	path := localPath(req.Params["path"])
	if !fileExists(path) {
		msg := fmt.Sprintf("Installer not found: %s", path)
		env.notify(pipeline.Error, "Error", msg)
		return pipeline.Fail(insterrors.MissingFile, msg)
	}

	res, err := env.Runner.Run(ctx, runner.Invocation{Path: path, Args: req.Args, Elevate: true})
	if err != nil {
		env.notify(pipeline.Error, "Installation Error",
			fmt.Sprintf("Error installing %s: %v", filepath.Base(path), err))
		return pipeline.Fail(insterrors.KindOf(err), err.Error())
	}

	env.logger().WithField("exit_code", res.ExitCode).Infof("%s finished", filepath.Base(path))
	if res.ExitCode != 0 {
		sr := pipeline.Fail(insterrors.NonZeroExit,
			fmt.Sprintf("%s exited with code %d", filepath.Base(path), res.ExitCode))
		sr.ExitCode = res.ExitCode
		return sr
	}
	return pipeline.Succeed(fmt.Sprintf("%s installed", filepath.Base(path)))
}

func (a *RunInstaller) DryRun(req Request) string {
	return fmt.Sprintf("Would run elevated: %s %s", localPath(req.Params["path"]), strings.Join(req.Args, " "))
}
