//go:build windows

package privilege

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

// IsElevated returns true when the current process token is elevated.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RelaunchElevated starts the current executable again through the
// "runas" verb so Windows shows the UAC prompt. The caller is expected to
// exit once this returns nil.
func RelaunchElevated(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return &insterrors.LaunchError{Path: "", Err: err}
	}

	verb, _ := windows.UTF16PtrFromString("runas")
	file, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return &insterrors.LaunchError{Path: exe, Err: err}
	}
	params, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(args))
	if err != nil {
		return &insterrors.LaunchError{Path: exe, Err: err}
	}
	cwd, _ := windows.UTF16PtrFromString(filepath.Dir(exe))

	if err := windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL); err != nil {
		if errors.Is(err, windows.ERROR_CANCELLED) {
			return &insterrors.LaunchError{Path: exe, Err: insterrors.ErrElevationDeclined}
		}
		return &insterrors.LaunchError{Path: exe, Err: err}
	}
	return nil
}
