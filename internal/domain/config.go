package domain

// Config represents the pomyaml configuration loaded from .pomyaml.yaml.
type Config struct {
	Input  string
	Output OutputConfig
}

type OutputConfig struct {
	// File is the output file name, relative to the project root.
	// It may reference {{groupId}}, {{artifactId}} and {{version}}.
	File   string
	Indent int
}

// DefaultConfig provides sane defaults if .pomyaml.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Input: "pom.xml",
		Output: OutputConfig{
			File:   "pom.yml",
			Indent: 2,
		},
	}
}
