package ports

import "github.com/aalvaropc/pomyaml/internal/domain"

// ModelLoader loads a project model from a source (e.g., a pom.xml on disk).
type ModelLoader interface {
	LoadModel(path string) (*domain.Model, error)
}
