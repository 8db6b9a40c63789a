package projectfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), map[string]string{})
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "pomyaml:\n  output:\n    indent: 4\n")

	cfg, err := LoadConfig(root, map[string]string{})
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Output.Indent != 4 {
		t.Fatalf("expected indent=4, got=%d", cfg.Output.Indent)
	}
	if cfg.Input != "pom.xml" {
		t.Fatalf("expected default input=pom.xml, got=%s", cfg.Input)
	}
	if cfg.Output.File != "pom.yml" {
		t.Fatalf("expected default output=pom.yml, got=%s", cfg.Output.File)
	}
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "pomyaml:\n  input: build/pom.xml\n  output:\n    file: out.yml\n")

	cfg, err := LoadConfig(root, map[string]string{
		"POMYAML_OUTPUT_FILE": "{{artifactId}}.yml",
		"POMYAML_INDENT":      "3",
	})
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Input != "build/pom.xml" {
		t.Fatalf("expected input from file, got=%s", cfg.Input)
	}
	if cfg.Output.File != "{{artifactId}}.yml" {
		t.Fatalf("expected output from env, got=%s", cfg.Output.File)
	}
	if cfg.Output.Indent != 3 {
		t.Fatalf("expected indent from env, got=%d", cfg.Output.Indent)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
	}{
		"bad yaml":     {file: "pomyaml: [\n"},
		"indent range": {file: "pomyaml:\n  output:\n    indent: 12\n"},
		"bad env int":  {env: map[string]string{"POMYAML_INDENT": "wide"}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if c.file != "" {
				writeConfig(t, root, c.file)
			}
			_, err := LoadConfig(root, c.env)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected KindInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigLoaderUsesEnviron(t *testing.T) {
	l := &ConfigLoader{Environ: map[string]string{"POMYAML_INPUT": "alt.xml"}}
	cfg, err := l.LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Input != "alt.xml" {
		t.Fatalf("expected input override, got %s", cfg.Input)
	}
}
