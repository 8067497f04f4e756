package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stevehiehn/win10to8/internal/engine"
	"github.com/stevehiehn/win10to8/internal/paths"
	"github.com/stevehiehn/win10to8/internal/plan"
	"github.com/stevehiehn/win10to8/internal/privilege"
	"github.com/stevehiehn/win10to8/internal/reboot"
	"github.com/stevehiehn/win10to8/internal/runner"
	"github.com/stevehiehn/win10to8/internal/ui"
)

var (
	assumeYes   bool
	plainOutput bool
)

const confirmMessage = "This will install all components and restart your PC when finished. Continue?"

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Run the install and restart (same as no subcommand)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

func init() {
	addInstallFlags(installCmd.Flags())
	rootCmd.AddCommand(installCmd)
}

func addInstallFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to every question (unattended)")
	fs.BoolVar(&plainOutput, "plain", false, "Plain console output instead of the interactive UI")
}

func installsFrom(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == installCmd
}

func usesTUI() bool {
	return !plainOutput && !jsonOutput && isatty.IsTerminal(os.Stdout.Fd())
}

// installer is one interactive install: elevation, confirmation, the
// pipeline, then the reboot decision.
type installer struct {
	plan      *plan.Plan
	inputs    map[string]string
	folders   map[string]string
	stateDir  string
	args      []string
	gate      func(args []string, asker privilege.Asker) (privilege.Outcome, error)
	runner    runner.Runner
	restarter reboot.Restarter
}

// install runs the elevation gate with asker before any frontend exists,
// then hands the run to present. A nil Result means nothing was installed.
func (in *installer) install(ctx context.Context, asker privilege.Asker, present func(work func(ui.Frontend)) error) (*engine.Result, error) {
	outcome, err := in.gate(in.args, asker)
	if err != nil {
		return nil, err
	}
	if outcome != privilege.Proceed {
		log.WithField("outcome", outcome).Info("not elevated, exiting")
		return nil, nil
	}

	var (
		result *engine.Result
		runErr error
	)
	if err := present(func(f ui.Frontend) { result, runErr = in.run(ctx, f) }); err != nil {
		return nil, err
	}
	return result, runErr
}

// run returns a nil Result when the user cancels.
func (in *installer) run(ctx context.Context, f ui.Frontend) (*engine.Result, error) {
	if !f.Confirm("Confirm Installation", confirmMessage) {
		log.Info("installation cancelled")
		return nil, nil
	}

	rc := engine.NewRunContext(in.stateDir, in.folders, in.inputs, in.runner, f)
	result, err := engine.Execute(ctx, in.plan, rc, engine.ModeRun)
	if err != nil {
		f.Inform("Error", err.Error())
		return nil, err
	}

	if _, err := reboot.Finish(ctx, result.Summary, f, in.restarter); err != nil {
		return result, err
	}
	return result, nil
}

func runInstall(cmd *cobra.Command) error {
	p, inputs, err := preparePlan("")
	if err != nil {
		return err
	}
	folders, err := paths.Resolve(baseDir)
	if err != nil {
		return err
	}

	exec := runner.Exec{}
	in := &installer{
		plan:      p,
		inputs:    inputs,
		folders:   folders,
		stateDir:  stateDir,
		args:      os.Args[1:],
		gate:      privilege.Ensure,
		runner:    exec,
		restarter: &reboot.Shutdown{Runner: exec},
	}

	out := os.Stdout
	if jsonOutput {
		out = os.Stderr
	}
	console := ui.NewConsole(os.Stdin, out, assumeYes)

	present := func(work func(ui.Frontend)) error {
		work(console)
		return nil
	}
	if usesTUI() {
		labels := make([]string, len(p.Steps))
		for i, s := range p.Steps {
			labels[i] = s.Label()
		}
		present = func(work func(ui.Frontend)) error {
			return ui.RunTUI(p.Description, labels, assumeYes, work)
		}
	}

	result, err := in.install(cmd.Context(), console, present)
	if result != nil {
		if jsonOutput {
			if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
				return err
			}
		} else {
			printSummary(result)
		}
	}
	return err
}

func printSummary(result *engine.Result) {
	fmt.Printf("%d/%d applications installed successfully.\n", result.RequiredSucceeded, result.RequiredCount)
	for _, e := range result.Errors {
		fmt.Printf("  %s: %s\n", e.StepID, e.Message)
	}
	fmt.Printf("Run ID: %s\n", result.RunID)
	for _, a := range result.Artifacts {
		fmt.Printf("Run record: %s\n", a)
	}
}
