//go:build !windows

package runner

import (
	"errors"
	"os/exec"

	"github.com/stevehiehn/win10to8/internal/privilege"
)

// elevationCancelledCode is never produced outside Windows.
const elevationCancelledCode = -1

var errElevationUnsupported = errors.New("elevation requires running as root on this platform")

func command(path string, inv Invocation) (*exec.Cmd, bool, error) {
	if inv.Elevate && !privilege.IsElevated() {
		return nil, false, errElevationUnsupported
	}
	return exec.Command(path, inv.Args...), false, nil
}
