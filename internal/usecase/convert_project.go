package usecase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aalvaropc/pomyaml/internal/app/template"
	"github.com/aalvaropc/pomyaml/internal/domain"
	"github.com/aalvaropc/pomyaml/internal/ports"
)

type Option func(*pipeline)

// WithLogger sets the logger used for use case events.
func WithLogger(l *slog.Logger) Option {
	return func(p *pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// pipeline is the shared load -> render -> name sequence of convert and check.
type pipeline struct {
	configs  ports.ConfigLoader
	models   ports.ModelLoader
	renderer ports.Renderer
	log      *slog.Logger
}

func newPipeline(cl ports.ConfigLoader, ml ports.ModelLoader, r ports.Renderer, opts []Option) pipeline {
	p := pipeline{
		configs:  cl,
		models:   ml,
		renderer: r,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// render loads the project at root and returns its canonical document and the
// output name relative to root.
func (p pipeline) render(ctx context.Context, root string) (domain.Conversion, string, error) {
	cfg, err := p.configs.LoadConfig(root)
	if err != nil {
		return domain.Conversion{}, "", err
	}

	input := cfg.Input
	if !filepath.IsAbs(input) {
		input = filepath.Join(root, input)
	}

	model, err := p.models.LoadModel(input)
	if err != nil {
		return domain.Conversion{}, "", err
	}
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, "", err
	}

	out, err := p.renderer.Marshal(model, cfg.Output.Indent)
	if err != nil {
		return domain.Conversion{}, "", err
	}

	name, err := template.RenderString(cfg.Output.File, template.ModelVars(model))
	if err != nil {
		return domain.Conversion{}, "", &domain.OpError{
			Op:   "usecase.output_name",
			Kind: domain.KindInvalidConfig,
			Path: cfg.Output.File,
			Err:  err,
		}
	}

	p.log.Debug("render.done", "input", input, "bytes", len(out), "indent", cfg.Output.Indent)
	return domain.Conversion{Input: input, Bytes: out}, name, nil
}

type ConvertProject struct {
	pipeline
	store ports.DocumentStore
}

func NewConvertProject(cl ports.ConfigLoader, ml ports.ModelLoader, r ports.Renderer, ds ports.DocumentStore, opts ...Option) *ConvertProject {
	return &ConvertProject{
		pipeline: newPipeline(cl, ml, r, opts),
		store:    ds,
	}
}

// Render produces the canonical document for the project at root without
// writing it. Output holds the path the document would be written to.
func (uc *ConvertProject) Render(ctx context.Context, root string) (domain.Conversion, error) {
	conv, name, err := uc.render(ctx, root)
	if err != nil {
		return domain.Conversion{}, err
	}
	conv.Output = filepath.Join(root, name)
	return conv, nil
}

// Execute renders the project at root and saves the document.
func (uc *ConvertProject) Execute(ctx context.Context, root string) (domain.Conversion, error) {
	conv, name, err := uc.render(ctx, root)
	if err != nil {
		return domain.Conversion{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, err
	}

	path, err := uc.store.SaveDocument(root, name, conv.Bytes)
	if err != nil {
		return domain.Conversion{}, err
	}
	conv.Output = path

	uc.log.Info("convert.done", "input", conv.Input, "output", path, "bytes", len(conv.Bytes))
	return conv, nil
}
