//go:build windows

package runner

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/stevehiehn/win10to8/internal/privilege"
)

// elevationCancelledCode is ERROR_CANCELLED, returned by the elevation
// wrapper when the UAC prompt is dismissed.
const elevationCancelledCode = 1223

func command(path string, inv Invocation) (*exec.Cmd, bool, error) {
	if inv.Elevate && !privilege.IsElevated() {
		cmd := exec.Command("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", elevationScript(path, inv.Args))
		cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
		return cmd, true, nil
	}

	cmd := exec.Command(path, inv.Args...)
	if inv.NoWindow {
		cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	}
	return cmd, false, nil
}

// elevationScript launches path through Start-Process -Verb RunAs, waits for
// it and propagates its exit code. Start-Process joins -ArgumentList with
// spaces, so each arg is escaped for the Windows command line first.
func elevationScript(path string, args []string) string {
	start := "Start-Process -FilePath " + psQuote(path)
	if len(args) > 0 {
		quoted := make([]string, len(args))
		for i, a := range args {
			quoted[i] = psQuote(windows.EscapeArg(a))
		}
		start += " -ArgumentList " + strings.Join(quoted, ",")
	}
	return fmt.Sprintf(`try { $p = %s -Verb RunAs -Wait -PassThru -ErrorAction Stop; exit $p.ExitCode } catch { exit %d }`,
		start, elevationCancelledCode)
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, `'`, `''`) + "'"
}
