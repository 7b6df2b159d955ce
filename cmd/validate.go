package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hellscube/cubegen/internal/layout"
	"github.com/hellscube/cubegen/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the card database and layout overrides",
	Long: `Validate fetches the card database and reads the layout overrides, then reports
problems that would break or silently change the generated script: layouts
missing required keys, duplicate names, and cards whose side fields do not
line up with their faces.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := loadDatabase(cmd, cfg)
		if err != nil {
			return err
		}

		layouts, err := layout.LoadFile(cfg.LayoutsFile)
		if err != nil {
			return fmt.Errorf("error loading layouts: %w", err)
		}

		results := validator.NewValidator(db.Cards, layouts).Validate()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.OK() {
			color.New(color.FgGreen).Fprintf(out, "✅ %d cards and %d layouts are valid.\n", len(db.Cards), len(layouts))
		} else {
			color.New(color.FgRed).Fprintf(out, "❌ Found %d validation errors:\n", len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			color.New(color.FgYellow).Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.OK() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
