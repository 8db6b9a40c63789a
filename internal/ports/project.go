package ports

import "github.com/aalvaropc/pomyaml/internal/domain"

type ProjectInitializer interface {
	Init(spec domain.ProjectSpec, force bool) error
}
