package ports

import "github.com/aalvaropc/pomyaml/internal/domain"

// ConfigLoader reads the tool configuration of a project root.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
