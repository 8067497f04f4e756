package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevehiehn/win10to8/internal/engine"
	"github.com/stevehiehn/win10to8/internal/paths"
)

var explainCmd = &cobra.Command{
	Use:   "explain [manifest.yaml]",
	Short: "Show resolved install steps without executing",
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
		result, err := engine.Execute(cmd.Context(), p, ctx, engine.ModeExplain)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		fmt.Printf("Manifest: %s\n", p.Name)
		if p.Description != "" {
			fmt.Printf("  %s\n", p.Description)
		}
		fmt.Printf("  Required steps: %d\n", result.RequiredCount)
		fmt.Println()
		for _, sr := range result.Steps {
			fmt.Printf("Step: %s", sr.ID)
			if sr.Required {
				fmt.Print(" (required)")
			}
			fmt.Println()
			if sr.Name != "" {
				fmt.Printf("  Status text: %s\n", sr.Name)
			}
			if sr.Command != "" {
				fmt.Printf("  Command: %s\n", sr.Command)
			}
			if sr.DryRunInfo != "" {
				fmt.Printf("  Info: %s\n", sr.DryRunInfo)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
