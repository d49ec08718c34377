package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
)

func newRenderCommand() *cobra.Command {
	var selected string
	var output string

	command := &cobra.Command{
		Use:   "render",
		Short: "Write the diagram as SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			sh, err := env.newShell(language.English)
			if err != nil {
				return err
			}
			if selected != "" && !sh.Click(selected) {
				return fmt.Errorf("unknown region: %s", selected)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", output, err)
				}
				defer func() {
					_ = file.Close()
				}()
				w = file
			}
			if err := sh.RenderDiagram(w, diagram.RenderOptions{}); err != nil {
				return fmt.Errorf("RenderDiagram() > %w", err)
			}
			return nil
		},
	}

	command.Flags().StringVar(&selected, "selected", "", "region to highlight")
	command.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return command
}
