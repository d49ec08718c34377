package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/language"
)

func newListCommand() *cobra.Command {
	var lang string

	command := &cobra.Command{
		Use:   "list",
		Short: "List the oxidation sites grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayLanguage, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("language.Parse(%s) > %w", lang, err)
			}
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			displayCatalog(cmd.OutOrStdout(), env.catalog, displayLanguage)
			return nil
		},
	}

	addLanguageFlag(command.Flags(), &lang)
	return command
}

func displayCatalog(w io.Writer, cat *catalog.Catalog, lang language.Language) {
	heading := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, category := range cat.Categories() {
		_, _ = heading.Fprintf(w, "%s\n", category.Label())
		for _, record := range cat.ByCategory(category) {
			_, _ = fmt.Fprintf(w, "  - %s: %s ", record.ID, record.Title.In(lang))
			_, _ = faint.Fprintf(w, "(%s)\n", record.SourcePages)
		}
	}
}
