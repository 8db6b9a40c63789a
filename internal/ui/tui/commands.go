package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

const renderTimeout = 30 * time.Second

func cmdRefreshProject(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return projectRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.ProjectLocator == nil {
			return projectRefreshedMsg{cwd: wd, err: errors.New("ProjectLocator is nil")}
		}

		root, findErr := deps.ProjectLocator.FindRoot(wd)
		if findErr != nil {
			return projectRefreshedMsg{cwd: wd, err: findErr}
		}
		return projectRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitProjectHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.ProjectInitializer == nil {
			return initProjectDoneMsg{root: root, err: errors.New("ProjectInitializer is nil")}
		}
		err := deps.ProjectInitializer.Init(domain.ProjectSpec{Root: root}, false)
		return initProjectDoneMsg{root: root, err: err}
	}
}

func cmdRenderDocument(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.Renderer == nil {
			return documentRenderedMsg{err: errors.New("Renderer is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		conv, err := deps.Renderer.Render(ctx, root)
		if err != nil {
			return documentRenderedMsg{err: err}
		}
		secs, err := splitSections(conv.Bytes)
		if err != nil {
			return documentRenderedMsg{conv: conv, err: err}
		}
		return documentRenderedMsg{conv: conv, sections: secs}
	}
}
