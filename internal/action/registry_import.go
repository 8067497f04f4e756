package action

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// ImportRegistry implements registry.import: merge a .reg file with
// `reg import`. A non-zero exit is retried once; launch failures are not.
type ImportRegistry struct{}

const registryRetries = 1

func (a *ImportRegistry) invocation(file string) runner.Invocation {
	return runner.Invocation{Path: "reg", Args: []string{"import", file}, Elevate: true, NoWindow: true}
}

func (a *ImportRegistry) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	file := localPath(req.Params["file"])
	name := filepath.Base(file)
	if !fileExists(file) {
		msg := fmt.Sprintf("Registry file not found: %s", name)
		env.notify(pipeline.Warning, "Warning", msg)
		return pipeline.Skip(msg)
	}

	inv := a.invocation(file)
	attempts, exitCode := 0, 0
	operation := func() error {
		attempts++
		res, err := env.Runner.Run(ctx, inv)
		if err != nil {
			return backoff.Permanent(err)
		}
		exitCode = res.ExitCode
		if res.ExitCode != 0 {
			env.logger().WithField("attempt", attempts).WithField("exit_code", res.ExitCode).Warnf("reg import %s failed", name)
			return &insterrors.ExitError{Path: inv.Path, Code: res.ExitCode}
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, registryRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		var msg string
		if insterrors.KindOf(err) == insterrors.NonZeroExit {
			msg = fmt.Sprintf("Error importing registry file: %s", name)
		} else {
			msg = fmt.Sprintf("Error importing registry file %s: %v", name, err)
		}
		env.notify(pipeline.Warning, "Registry Import Error", msg)
		sr := pipeline.Fail(insterrors.KindOf(err), msg)
		sr.ExitCode = exitCode
		return sr
	}

	if attempts > 1 {
		return pipeline.Succeed(fmt.Sprintf("imported %s after retry", name))
	}
	return pipeline.Succeed(fmt.Sprintf("imported %s", name))
}

func (a *ImportRegistry) DryRun(req Request) string {
	return "Would run elevated: " + a.invocation(localPath(req.Params["file"])).String()
}
