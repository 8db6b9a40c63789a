package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func convertCmd(g *globals) *cobra.Command {
	var project string
	var stdout bool

	c := &cobra.Command{
		Use:   "convert",
		Short: "Write the canonical YAML form of the project model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, done, err := openProject(project, g.debug)
			if err != nil {
				return err
			}
			defer done()

			out := cmd.OutOrStdout()
			if stdout {
				conv, err := p.convert.Render(cmd.Context(), p.root)
				if err != nil {
					return err
				}
				_, err = out.Write(conv.Bytes)
				return err
			}

			conv, err := p.convert.Execute(cmd.Context(), p.root)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %s\n", relTo(p.root, conv.Output))
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&stdout, "stdout", false, "Print the document instead of writing it")
	return c
}
