// Package paths resolves the folders the install manifest refers to.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Keys available to manifests as {{paths.<key>}}.
const (
	Base        = "base"
	Windows     = "windows"
	System32    = "system32"
	ProgramData = "programdata"
	SystemDrive = "systemdrive"
)

// Resolve returns the folder map. baseDir overrides the installer's own
// directory when non-empty.
func Resolve(baseDir string) (map[string]string, error) {
	if baseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating installer directory: %w", err)
		}
		baseDir = filepath.Dir(exe)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving base dir: %w", err)
	}

	m, err := systemFolders()
	if err != nil {
		return nil, err
	}
	m[Base] = abs
	return m, nil
}

// StateDir is where run records and logs live by default.
func StateDir() string {
	m, err := systemFolders()
	if err != nil {
		return filepath.Join(os.TempDir(), "win10to8")
	}
	return filepath.Join(m[ProgramData], "win10to8")
}
