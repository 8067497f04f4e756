package privilege

import (
	"errors"
	"testing"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

type scriptedAsker struct {
	answer   bool
	asked    int
	informed []string
}

func (a *scriptedAsker) Confirm(title, message string) bool {
	a.asked++
	return a.answer
}

func (a *scriptedAsker) Inform(title, message string) {
	a.informed = append(a.informed, title)
}

func stubGate(t *testing.T, elevated bool, relaunchErr error) *[][]string {
	t.Helper()
	origElevated, origRelaunch := isElevated, relaunch
	t.Cleanup(func() { isElevated, relaunch = origElevated, origRelaunch })

	var calls [][]string
	isElevated = func() bool { return elevated }
	relaunch = func(args []string) error {
		calls = append(calls, args)
		return relaunchErr
	}
	return &calls
}

func TestEnsureElevatedSkipsPrompt(t *testing.T) {
	calls := stubGate(t, true, nil)
	asker := &scriptedAsker{}
	out, err := Ensure(nil, asker)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Proceed {
		t.Errorf("expected Proceed, got %v", out)
	}
	if asker.asked != 0 || len(*calls) != 0 {
		t.Error("expected no prompt and no relaunch")
	}
}

func TestEnsureRelaunchesOnConsent(t *testing.T) {
	calls := stubGate(t, false, nil)
	out, err := Ensure([]string{"install", "--yes"}, &scriptedAsker{answer: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Relaunched {
		t.Errorf("expected Relaunched, got %v", out)
	}
	if len(*calls) != 1 || (*calls)[0][1] != "--yes" {
		t.Errorf("expected relaunch with original args, got %v", *calls)
	}
}

func TestEnsureDeclined(t *testing.T) {
	calls := stubGate(t, false, nil)
	out, err := Ensure(nil, &scriptedAsker{answer: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Declined {
		t.Errorf("expected Declined, got %v", out)
	}
	if len(*calls) != 0 {
		t.Error("relaunch must not happen when the user declines")
	}
}

func TestEnsureRelaunchFailureIsFatal(t *testing.T) {
	stubGate(t, false, &insterrors.LaunchError{Path: "win10to8.exe", Err: insterrors.ErrElevationDeclined})
	asker := &scriptedAsker{answer: true}
	_, err := Ensure(nil, asker)
	if err == nil {
		t.Fatal("expected fatal error")
	}
	var runErr *insterrors.RunError
	if !errors.As(err, &runErr) || runErr.Type != insterrors.Fatal {
		t.Errorf("expected FATAL run error, got %v", err)
	}
	if len(asker.informed) != 1 {
		t.Errorf("expected one fatal notice, got %v", asker.informed)
	}
}
