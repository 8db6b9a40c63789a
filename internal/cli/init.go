package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pomyaml/internal/infra/fsproject"
	"github.com/aalvaropc/pomyaml/internal/usecase"
)

func initCmd() *cobra.Command {
	var project string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create .pomyaml.yaml in a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := strings.TrimSpace(project)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid project path: %w", err)
			}

			if err := usecase.NewInitProject(fsproject.NewInitializer()).Execute(root, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized pomyaml in %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&project, "project", "p", "", "Project root (defaults to the working directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
