package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

// Renderer produces the canonical document of a project without writing it.
type Renderer interface {
	Render(ctx context.Context, root string) (domain.Conversion, error)
}

type Deps struct {
	ProjectLocator     ports.ProjectLocator
	ProjectInitializer ports.ProjectInitializer
	Renderer           Renderer

	Logger *slog.Logger
	Debug  bool
}
