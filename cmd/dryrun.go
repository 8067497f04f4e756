package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevehiehn/win10to8/internal/engine"
	"github.com/stevehiehn/win10to8/internal/paths"
)

var dryRunCmd = &cobra.Command{
	Use:   "dry-run [manifest.yaml]",
	Short: "Show what the install would do without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, inputs, err := preparePlan(argOrEmpty(args))
		if err != nil {
			return err
		}
		folders, err := paths.Resolve(baseDir)
		if err != nil {
			return err
		}

		ctx := engine.NewRunContext(stateDir, folders, inputs, nil, nil)
		result, err := engine.Execute(cmd.Context(), p, ctx, engine.ModeDryRun)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		fmt.Printf("Dry-run: %s\n\n", p.Name)
		for _, sr := range result.Steps {
			fmt.Printf("Step: %s [%s]\n", sr.ID, sr.Status)
			if sr.DryRunInfo != "" {
				fmt.Printf("  %s\n", sr.DryRunInfo)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dryRunCmd)
}
