package projectfinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

// ConfigLoader reads ConfigFile from a project root. A nil Environ means the
// process environment.
type ConfigLoader struct {
	Environ map[string]string
}

var _ ports.ConfigLoader = (*ConfigLoader)(nil)

func (l *ConfigLoader) LoadConfig(root string) (domain.Config, error) {
	return LoadConfig(root, l.Environ)
}

// LoadConfig loads ConfigFile from root, applies it over the defaults and then
// applies POMYAML_* overrides from environ. A missing file is not an error.
func LoadConfig(root string, environ map[string]string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "projectfinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		y.apply(&cfg)
	}

	var overrides envConfig
	if err := env.ParseWithOptions(&overrides, env.Options{Environment: environ}); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("parse env: %w", err),
		}
	}
	overrides.apply(&cfg)

	if cfg.Output.Indent < 2 || cfg.Output.Indent > 9 {
		return cfg, &domain.OpError{
			Op:   "projectfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("output.indent must be between 2 and 9, got %d: %w", cfg.Output.Indent, domain.ErrInvalidConfig),
		}
	}
	return cfg, nil
}

type yamlConfig struct {
	Pomyaml struct {
		Input  string `yaml:"input"`
		Output struct {
			File   string `yaml:"file"`
			Indent *int   `yaml:"indent"`
		} `yaml:"output"`
	} `yaml:"pomyaml"`
}

func (y yamlConfig) apply(cfg *domain.Config) {
	if y.Pomyaml.Input != "" {
		cfg.Input = y.Pomyaml.Input
	}
	if y.Pomyaml.Output.File != "" {
		cfg.Output.File = y.Pomyaml.Output.File
	}
	if y.Pomyaml.Output.Indent != nil {
		cfg.Output.Indent = *y.Pomyaml.Output.Indent
	}
}

type envConfig struct {
	Input      string `env:"POMYAML_INPUT"`
	OutputFile string `env:"POMYAML_OUTPUT_FILE"`
	Indent     int    `env:"POMYAML_INDENT"`
}

func (e envConfig) apply(cfg *domain.Config) {
	if e.Input != "" {
		cfg.Input = e.Input
	}
	if e.OutputFile != "" {
		cfg.Output.File = e.OutputFile
	}
	if e.Indent != 0 {
		cfg.Output.Indent = e.Indent
	}
}
