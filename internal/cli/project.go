package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/pomyaml/internal/infra/logger"
	"github.com/aalvaropc/pomyaml/internal/infra/pomxml"
	"github.com/aalvaropc/pomyaml/internal/infra/projectfinder"
	"github.com/aalvaropc/pomyaml/internal/infra/reflectenum"
	"github.com/aalvaropc/pomyaml/internal/infra/yamldoc"
	"github.com/aalvaropc/pomyaml/internal/ports"
	"github.com/aalvaropc/pomyaml/internal/represent"
	"github.com/aalvaropc/pomyaml/internal/usecase"
)

type components struct {
	configs  ports.ConfigLoader
	models   ports.ModelLoader
	renderer ports.Renderer
	store    ports.DocumentStore
}

func newComponents() components {
	return components{
		configs:  &projectfinder.ConfigLoader{},
		models:   pomxml.NewLoader(),
		renderer: represent.New(reflectenum.NewMaven(), represent.DefaultPolicy()),
		store:    yamldoc.NewStore(),
	}
}

type projectCtx struct {
	root    string
	convert *usecase.ConvertProject
	check   *usecase.CheckProject
}

// openProject resolves the project root, starts logging under it and wires the
// use cases. The returned func flushes the log file.
func openProject(projectFlag string, debug bool) (*projectCtx, func(), error) {
	root, err := resolveProjectRoot(projectFlag)
	if err != nil {
		return nil, nil, err
	}

	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	done := func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}

	c := newComponents()
	log := usecase.WithLogger(logger.L())

	return &projectCtx{
		root:    root,
		convert: usecase.NewConvertProject(c.configs, c.models, c.renderer, c.store, log),
		check:   usecase.NewCheckProject(c.configs, c.models, c.renderer, c.store, log),
	}, done, nil
}

func resolveProjectRoot(projectFlag string) (string, error) {
	p := strings.TrimSpace(projectFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("invalid project path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := projectfinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("project not found from %q (tip: run inside a Maven project or use -p): %w", wd, err)
	}
	return root, nil
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
