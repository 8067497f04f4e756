//go:build !windows

package privilege

import (
	"errors"
	"os"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// RelaunchElevated is not supported outside Windows.
func RelaunchElevated(args []string) error {
	exe, _ := os.Executable()
	return &insterrors.LaunchError{Path: exe, Err: errors.New("elevated relaunch is only supported on Windows")}
}
