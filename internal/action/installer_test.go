package action

import (
	"context"
	"path/filepath"
	"testing"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/runner/runnertest"
)

func TestRunInstallerExitCodeMapping(t *testing.T) {
	for _, tc := range []struct {
		exe  string
		args []string
	}{
		{"StartIsBackPlusPlus_setup.exe", []string{"/elevated", "/silent"}},
		{"windhawk_setup_offline.exe", []string{"/S", "/nostart"}},
	} {
		for _, code := range []int{0, 1, 3010} {
			env, fake, _ := newEnv(t)
			path := touch(t, filepath.Join(t.TempDir(), tc.exe))
			fake.Exit(tc.exe, code)

			res := (&RunInstaller{}).Execute(context.Background(), env, Request{
				Params: map[string]string{"path": path},
				Args:   tc.args,
			})

			if res.Succeeded != (code == 0) {
				t.Errorf("%s exit %d: succeeded=%v", tc.exe, code, res.Succeeded)
			}
			if code != 0 && (res.ExitCode != code || res.Kind != insterrors.NonZeroExit) {
				t.Errorf("%s exit %d: unexpected result %+v", tc.exe, code, res)
			}
			calls := fake.CallsTo(tc.exe)
			if len(calls) != 1 {
				t.Fatalf("expected one launch, got %d", len(calls))
			}
			if !calls[0].Elevate {
				t.Error("installers must run elevated")
			}
			if len(calls[0].Args) != 2 || calls[0].Args[0] != tc.args[0] || calls[0].Args[1] != tc.args[1] {
				t.Errorf("unexpected args %v", calls[0].Args)
			}
		}
	}
}

func TestRunInstallerMissingFile(t *testing.T) {
	env, fake, obs := newEnv(t)
	res := (&RunInstaller{}).Execute(context.Background(), env, Request{
		Params: map[string]string{"path": filepath.Join(t.TempDir(), "setup.exe")},
	})
	if res.Succeeded {
		t.Fatal("expected failure for missing installer")
	}
	if res.Kind != insterrors.MissingFile {
		t.Errorf("expected MISSING_FILE, got %q", res.Kind)
	}
	if len(fake.Calls()) != 0 {
		t.Error("missing installer must not be launched")
	}
	if len(obs.notices) != 1 || obs.notices[0].Title != "Error" {
		t.Errorf("unexpected notices %v", obs.notices)
	}
}

func TestRunInstallerStartError(t *testing.T) {
	env, fake, obs := newEnv(t)
	path := touch(t, filepath.Join(t.TempDir(), "setup.exe"))
	fake.Script("setup.exe", runnertest.Reply{Err: &insterrors.ProcessStartError{Path: path, Err: insterrors.ErrElevationDeclined}})

	res := (&RunInstaller{}).Execute(context.Background(), env, Request{Params: map[string]string{"path": path}})
	if res.Succeeded {
		t.Fatal("expected failure")
	}
	if res.Kind != insterrors.ProcessStart {
		t.Errorf("expected PROCESS_START, got %q", res.Kind)
	}
	if len(obs.notices) != 1 || obs.notices[0].Title != "Installation Error" {
		t.Errorf("unexpected notices %v", obs.notices)
	}
}
