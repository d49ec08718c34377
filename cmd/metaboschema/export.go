package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

func newExportCommand() *cobra.Command {
	var lang string
	var outputDirectory string

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the full reference of every oxidation site as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayLanguage, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language.Parse(%s) > %w", lang, err)
			}
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			exporter, err := env.newExporter(outputDirectory)
			if err != nil {
				return err
			}
			sh, err := env.newShell(displayLanguage, shell.WithExporter(exporter))
			if err != nil {
				return err
			}

			_, notice := sh.Export(cmd.Context())
			if !notice.OK {
				return errors.New(notice.Message)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notice.Message)
			return nil
		},
	}

	addLanguageFlag(command.Flags(), &lang)
	command.Flags().StringVar(&outputDirectory, "output-dir", "", "directory of the exported files (default: export.directory of the config)")
	return command
}
