package action

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// FetchSymbols implements symbols.fetch: download debug symbols for a list
// of system binaries. A failing binary is reported and the rest still run.
type FetchSymbols struct{}

func symbolPath(cache, server string) string {
	return fmt.Sprintf("SRV*%s*%s", cache, server)
}

func (a *FetchSymbols) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	tool := localPath(req.Params["tool"])
	cache := localPath(req.Params["cache"])
	server := req.Params["server"]

	if !fileExists(tool) {
		msg := fmt.Sprintf("Symbol download tool not found: %s", filepath.Base(tool))
		env.notify(pipeline.Warning, "Warning", msg)
		return pipeline.Skip(msg)
	}
	if err := os.MkdirAll(cache, 0o755); err != nil {
		env.logger().WithError(err).Warn("creating symbol cache")
	}

	var (
		stdout, stderr strings.Builder
		failed         int
	)
	for _, target := range req.Args {
		target = localPath(target)
		name := filepath.Base(target)
		if !fileExists(target) {
			failed++
			env.notify(pipeline.Warning, "Symbols", fmt.Sprintf("Binary not found, skipping symbols: %s", target))
			continue
		}

		res, err := env.Runner.Run(ctx, runner.Invocation{
			Path:          tool,
			Args:          []string{target, "/s", symbolPath(cache, server)},
			CaptureOutput: true,
			NoWindow:      true,
		})
		if err != nil {
			failed++
			env.notify(pipeline.Warning, "Symbols", fmt.Sprintf("Error downloading symbols for %s: %v", name, err))
			continue
		}
		stdout.WriteString(res.Stdout)
		stderr.WriteString(res.Stderr)
		if res.ExitCode != 0 {
			failed++
			env.notify(pipeline.Warning, "Symbols", fmt.Sprintf("Symbols for %s could not be downloaded (exit code %d)", name, res.ExitCode))
		}
	}

	var sr pipeline.StepResult
	if failed > 0 {
		sr = pipeline.Fail(insterrors.NonZeroExit,
			fmt.Sprintf("symbols fetched for %d of %d binaries", len(req.Args)-failed, len(req.Args)))
	} else {
		sr = pipeline.Succeed(fmt.Sprintf("symbols fetched for %d binaries", len(req.Args)))
	}
	sr.Stdout = stdout.String()
	sr.Stderr = stderr.String()
	return sr
}

func (a *FetchSymbols) DryRun(req Request) string {
	return fmt.Sprintf("Would fetch symbols for %d binaries with %s into %s",
		len(req.Args), localPath(req.Params["tool"]), symbolPath(localPath(req.Params["cache"]), req.Params["server"]))
}
