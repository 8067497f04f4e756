// Package reboot decides what happens once the install pipeline finishes.
package reboot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	insterrors "github.com/stevehiehn/win10to8/internal/errors"
	"github.com/stevehiehn/win10to8/internal/pipeline"
	"github.com/stevehiehn/win10to8/internal/runner"
)

// Decision is the path taken after a run.
type Decision int

const (
	// Restart reboots without asking.
	Restart Decision = iota
	// Ask prompts before rebooting.
	Ask
)

func (d Decision) String() string {
	if d == Restart {
		return "restart"
	}
	return "ask"
}

// Outcome is what Finish actually did.
type Outcome int

const (
	Restarted Outcome = iota
	Declined
	RestartFailed
)

func (o Outcome) String() string {
	switch o {
	case Restarted:
		return "restarted"
	case Declined:
		return "declined"
	default:
		return "restart-failed"
	}
}

// Dialog is the foreground's confirmation surface.
type Dialog interface {
	Confirm(title, message string) bool
	Inform(title, message string)
}

// Restarter reboots the machine.
type Restarter interface {
	Restart(ctx context.Context) error
}

// Decide looks only at the required steps: optional failures never force
// a prompt.
func Decide(s *pipeline.Summary) Decision {
	if s.AllRequiredSucceeded() {
		return Restart
	}
	return Ask
}

const (
	successMessage = "Installation completed successfully! The computer will restart."
	partialMessage = "Installation completed with errors. %d/%d applications installed successfully.\n\nDo you still want to restart the computer?"
)

// Finish applies the decision for s.
func Finish(ctx context.Context, s *pipeline.Summary, d Dialog, r Restarter) (Outcome, error) {
	decision := Decide(s)
	log.WithField("decision", decision).
		WithField("required", fmt.Sprintf("%d/%d", s.SucceededRequired, s.RequiredCount)).
		Info("install finished")

	switch decision {
	case Restart:
		d.Inform("Success", successMessage)
	default:
		if !d.Confirm("Warning", fmt.Sprintf(partialMessage, s.SucceededRequired, s.RequiredCount)) {
			log.Info("restart declined")
			return Declined, nil
		}
	}

	if err := r.Restart(ctx); err != nil {
		d.Inform("Restart Error", fmt.Sprintf("Error restarting computer: %v", err))
		return RestartFailed, err
	}
	return Restarted, nil
}

// Shutdown restarts the machine with `shutdown /r /t 0`.
type Shutdown struct {
	Runner runner.Runner
}

func (s *Shutdown) Restart(ctx context.Context) error {
	inv := runner.Invocation{Path: "shutdown", Args: []string{"/r", "/t", "0"}, Elevate: true, NoWindow: true}
	res, err := s.Runner.Run(ctx, inv)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return &insterrors.ExitError{Path: inv.Path, Code: res.ExitCode}
	}
	return nil
}
