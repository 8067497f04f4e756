package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stevehiehn/win10to8/internal/logging"
	"github.com/stevehiehn/win10to8/internal/paths"
)

var (
	jsonOutput   bool
	logLevel     string
	logFile      string
	manifestPath string
	baseDir      string
	stateDir     string
	inputFlags   []string
)

var rootCmd = &cobra.Command{
	Use:   "win10to8",
	Short: "Give Windows 10 the Windows 8 shell look",
	Long: "win10to8 copies the bundled window manager and theme assets, installs\n" +
		"StartIsBack++ and Windhawk, imports scheduled tasks and registry tweaks,\n" +
		"then restarts the computer. Run without a subcommand to install.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

func init() {
	// Assigned here rather than in the literal to break the
	// rootCmd -> resolveLogFile -> installsFrom -> rootCmd init cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if stateDir == "" {
			stateDir = paths.StateDir()
		}
		return logging.Init(logLevel, resolveLogFile(cmd))
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output raw JSON")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", `Log file path or "console" (default: <state-dir>/logs/win10to8.log for the TUI, console otherwise)`)
	pf.StringVar(&manifestPath, "manifest", "", "Install manifest YAML (default: built-in)")
	pf.StringVar(&baseDir, "base-dir", "", "Directory holding Files/ (default: the executable's directory)")
	pf.StringVar(&stateDir, "state-dir", "", "Directory for run records and logs (default: <ProgramData>/win10to8)")
	pf.StringArrayVar(&inputFlags, "input", nil, "Manifest input values (key=value)")

	addInstallFlags(rootCmd.Flags())
}

// resolveLogFile keeps log lines off the terminal while the TUI owns it.
func resolveLogFile(cmd *cobra.Command) string {
	if logFile != "" {
		return logFile
	}
	if installsFrom(cmd) && usesTUI() {
		return filepath.Join(stateDir, "logs", "win10to8.log")
	}
	return logging.Console
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
