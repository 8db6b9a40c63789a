package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pomyaml/internal/infra/fsproject"
	"github.com/aalvaropc/pomyaml/internal/infra/logger"
	"github.com/aalvaropc/pomyaml/internal/infra/projectfinder"
	"github.com/aalvaropc/pomyaml/internal/ui/tui"
	"github.com/aalvaropc/pomyaml/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type globals struct {
	debug bool
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "pomyaml",
		Short:        "pomyaml: canonical YAML for Maven project models",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView(g)
		},
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .pomyaml/logs/pomyaml.log")

	cmd.AddCommand(
		convertCmd(g),
		checkCmd(g),
		queryCmd(g),
		initCmd(),
		viewCmd(g),
		versionCmd(),
	)
	return cmd
}

func viewCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the canonical document section by section",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runView(g)
		},
	}
}

func runView(g *globals) error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	finder := projectfinder.NewFinder()

	logRoot := wd
	if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
		logRoot = root
	}

	cleanup, _ := logger.Setup(logger.Config{
		Root:  logRoot,
		Debug: g.debug,
	})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	c := newComponents()
	deps := tui.Deps{
		ProjectLocator:     finder,
		ProjectInitializer: fsproject.NewInitializer(),
		Renderer:           usecase.NewConvertProject(c.configs, c.models, c.renderer, c.store, usecase.WithLogger(logger.L())),
		Logger:             logger.L(),
		Debug:              g.debug,
	}

	return tui.Run(deps)
}
