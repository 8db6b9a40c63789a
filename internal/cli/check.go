package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(g *globals) *cobra.Command {
	var project string

	c := &cobra.Command{
		Use:   "check",
		Short: "Fail when the stored YAML document is not canonical",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, done, err := openProject(project, g.debug)
			if err != nil {
				return err
			}
			defer done()

			res, err := p.check.Execute(cmd.Context(), p.root)
			if err != nil {
				return err
			}

			name := relTo(p.root, res.Output)
			if !res.UpToDate {
				return fmt.Errorf("%s is out of date (first difference at line %d; run `pomyaml convert`)", name, res.FirstDiffLine)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s\n", name)
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (optional; autodetected if omitted)")
	return c
}
