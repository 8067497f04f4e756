//go:build !windows

package paths

import (
	"os"
	"path/filepath"
)

// systemFolders maps the Windows folders onto a scratch root so manifests
// can be explained and exercised on other hosts. WIN10TO8_ROOT overrides
// the root.
func systemFolders() (map[string]string, error) {
	root := os.Getenv("WIN10TO8_ROOT")
	if root == "" {
		root = filepath.Join(os.TempDir(), "win10to8-root")
	}
	win := filepath.Join(root, "Windows")
	return map[string]string{
		Windows:     win,
		System32:    filepath.Join(win, "System32"),
		ProgramData: filepath.Join(root, "ProgramData"),
		SystemDrive: root,
	}, nil
}
