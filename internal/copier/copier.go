// Package copier replicates asset trees onto the target machine.
package copier

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// Failure records one item that could not be copied.
type Failure struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// CopyResult summarises a CopyTree call.
type CopyResult struct {
	Copied   int       `json:"copied"`
	Failures []Failure `json:"failures,omitempty"`
}

// OK is true when nothing failed.
func (r *CopyResult) OK() bool { return len(r.Failures) == 0 }

// Err folds all failures into one error, or nil.
func (r *CopyResult) Err() error {
	var merr *multierror.Error
	for _, f := range r.Failures {
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", f.Path, f.Message))
	}
	return merr.ErrorOrNil()
}

// SourceMissing is the relative path recorded when the source tree is absent.
const SourceMissing = "."

// CopyTree copies every file under source into destination, overwriting
// existing files. Failures are recorded per item and never stop siblings
// or other subdirectories from being copied.
func CopyTree(source, destination string) *CopyResult {
	res := &CopyResult{}
	info, err := os.Stat(source)
	if err != nil {
		res.fail(SourceMissing, fmt.Errorf("source folder not found: %w", err))
		return res
	}
	if !info.IsDir() {
		res.fail(SourceMissing, fmt.Errorf("source %s is not a directory", source))
		return res
	}
	copyDir(source, destination, "", res)
	return res
}

func (r *CopyResult) fail(rel string, err error) {
	r.Failures = append(r.Failures, Failure{Path: rel, Message: err.Error()})
}

// copyDir copies files first, then descends into subdirectories.
func copyDir(srcDir, dstDir, rel string, res *CopyResult) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		res.fail(relOrDot(rel), err)
		return
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		res.fail(relOrDot(rel), err)
		return
	}

	var dirs []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
			continue
		}
		itemRel := filepath.Join(rel, e.Name())
		if err := copyFile(filepath.Join(srcDir, e.Name()), filepath.Join(dstDir, e.Name())); err != nil {
			res.fail(itemRel, err)
			continue
		}
		res.Copied++
	}

	for _, d := range dirs {
		copyDir(filepath.Join(srcDir, d.Name()), filepath.Join(dstDir, d.Name()), filepath.Join(rel, d.Name()), res)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()|0o200)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func relOrDot(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
