package action

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stevehiehn/win10to8/internal/copier"
	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
)

// CopyTree implements copy.tree: replicate a bundled asset folder.
type CopyTree struct{}

func (c *CopyTree) Execute(ctx context.Context, env *Env, req Request) pipeline.StepResult {
	src := localPath(req.Params["source"])
	dst := localPath(req.Params["destination"])
	label := req.Params["label"]
	if label == "" {
		label = filepath.Base(src)
	}

	if !dirExists(src) {
		msg := fmt.Sprintf("%s folder not found in Files directory!", label)
		env.notify(pipeline.Warning, "Warning", msg)
		return pipeline.Skip(msg)
	}

	res := copier.CopyTree(src, dst)
	for _, f := range res.Failures {
		env.notify(pipeline.Warning, "Copy Error", fmt.Sprintf("Error copying %s: %s", f.Path, f.Message))
	}
	env.logger().WithField("copied", res.Copied).Debugf("copied %s to %s", src, dst)

	if err := res.Err(); err != nil {
		return pipeline.Fail(insterrors.CopyFailure,
			fmt.Sprintf("copied %d files to %s: %v", res.Copied, dst, err))
	}
	return pipeline.Succeed(fmt.Sprintf("copied %d files to %s", res.Copied, dst))
}

func (c *CopyTree) DryRun(req Request) string {
	return fmt.Sprintf("Would copy %s to %s", localPath(req.Params["source"]), localPath(req.Params["destination"]))
}
