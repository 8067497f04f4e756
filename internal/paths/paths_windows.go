//go:build windows

package paths

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func systemFolders() (map[string]string, error) {
	win, err := windows.KnownFolderPath(windows.FOLDERID_Windows, 0)
	if err != nil {
		return nil, fmt.Errorf("resolving Windows folder: %w", err)
	}
	sys32, err := windows.KnownFolderPath(windows.FOLDERID_System, 0)
	if err != nil {
		return nil, fmt.Errorf("resolving System32 folder: %w", err)
	}
	data, err := windows.KnownFolderPath(windows.FOLDERID_ProgramData, 0)
	if err != nil {
		return nil, fmt.Errorf("resolving ProgramData folder: %w", err)
	}
	return map[string]string{
		Windows:     win,
		System32:    sys32,
		ProgramData: data,
		SystemDrive: filepath.VolumeName(win) + `\`,
	}, nil
}
