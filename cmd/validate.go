package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stevehiehn/win10to8/internal/plan"
)

var validateCmd = &cobra.Command{
	Use:   "validate [manifest.yaml]",
	Short: "Validate an install manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlan(argOrEmpty(args))
		if err != nil {
			return err
		}
		if err := plan.Validate(p, nil); err != nil {
			if jsonOutput {
				json.NewEncoder(os.Stdout).Encode(map[string]any{"valid": false, "error": err.Error()})
			} else {
				fmt.Fprintf(os.Stderr, "Validation failed: %s\n", err)
			}
			os.Exit(1)
		}
		if jsonOutput {
			json.NewEncoder(os.Stdout).Encode(map[string]any{"valid": true, "steps": len(p.Steps), "required": p.RequiredCount()})
		} else {
			fmt.Printf("Manifest is valid: %d steps, %d required.\n", len(p.Steps), p.RequiredCount())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
