package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

func newCopyCommand() *cobra.Command {
	var lang string

	command := &cobra.Command{
		Use:   "copy",
		Short: "Copy the SMILES string of the molecule to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayLanguage, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language.Parse(%s) > %w", lang, err)
			}
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			sh, err := env.newShell(displayLanguage, shell.WithClipboard(env.newClipboard()))
			if err != nil {
				return err
			}

			notice := sh.CopyNotation(cmd.Context())
			if !notice.OK && !notice.Manual {
				return errors.New(notice.Message)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notice.Message)
			return nil
		},
	}

	addLanguageFlag(command.Flags(), &lang)
	return command
}
