package privilege

import (
	"errors"

	log "github.com/sirupsen/logrus"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
)

// Outcome is the result of the administrator check.
type Outcome int

const (
	// Proceed means the process already holds administrator rights.
	Proceed Outcome = iota
	// Relaunched means an elevated copy was started; this process must exit.
	Relaunched
	// Declined means the user refused to relaunch.
	Declined
)

// Asker is the part of the foreground adapter the gate talks to.
type Asker interface {
	Confirm(title, message string) bool
	Inform(title, message string)
}

var (
	isElevated = IsElevated
	relaunch   = RelaunchElevated
)

// Ensure runs once before any UI is built. When the process is not
// elevated it offers to relaunch with args; a failed relaunch is fatal.
func Ensure(args []string, asker Asker) (Outcome, error) {
	if isElevated() {
		return Proceed, nil
	}

	if !asker.Confirm("Administrator Privileges Required",
		"This application must be run as an administrator. Relaunch with elevated privileges?") {
		log.Info("user declined elevation")
		return Declined, nil
	}

	if err := relaunch(args); err != nil {
		asker.Inform("Permission Denied", "Administrator privileges are required to run this application.")
		if errors.Is(err, insterrors.ErrElevationDeclined) {
			log.Warn("elevation prompt was cancelled")
		}
		return Declined, &insterrors.RunError{Type: insterrors.Fatal, Message: err.Error()}
	}
	return Relaunched, nil
}
