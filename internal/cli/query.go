package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pomyaml/internal/usecase/query"
)

func queryCmd(g *globals) *cobra.Command {
	var project string

	c := &cobra.Command{
		Use:     "query EXPR",
		Short:   "Evaluate a JSONPath expression against the canonical document",
		Example: "  pomyaml query '$.dependencies[*].artifactId'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, done, err := openProject(project, g.debug)
			if err != nil {
				return err
			}
			defer done()

			conv, err := p.convert.Render(cmd.Context(), p.root)
			if err != nil {
				return err
			}

			v, err := query.Evaluate(conv.Bytes, args[0])
			if err != nil {
				return err
			}
			s, err := query.Format(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	return c
}
