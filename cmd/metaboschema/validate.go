package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/catalog"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every diagram region has a catalog record",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}

			result := env.catalog.CheckRegions(env.scene.RegionIDs())
			displayValidationResults(cmd.OutOrStdout(), result)

			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}
}

func displayValidationResults(w io.Writer, result *catalog.ValidationResult) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)

	_, _ = fmt.Fprintln(w, "\n=== Validation Results ===")

	if len(result.Errors) > 0 {
		_, _ = red.Fprintf(w, "✗ Region errors (%d):\n", len(result.Errors))
		for _, err := range result.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", err.Error())
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(result.Warnings) > 0 {
		_, _ = yellow.Fprintf(w, "⚠ Warnings (%d):\n", len(result.Warnings))
		for _, warn := range result.Warnings {
			_, _ = fmt.Fprintf(w, "  - %s\n", warn.Error())
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w, "=== Summary ===")
	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		_, _ = green.Fprintln(w, "✓ All validations passed!")
	} else {
		if len(result.Errors) > 0 {
			_, _ = red.Fprintf(w, "✗ Total errors: %d\n", len(result.Errors))
		}
		if len(result.Warnings) > 0 {
			_, _ = yellow.Fprintf(w, "⚠ Total warnings: %d\n", len(result.Warnings))
		}
	}
	_, _ = fmt.Fprintln(w)
}
