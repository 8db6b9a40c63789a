package tui

import "github.com/aalvaropc/pomyaml/internal/domain"

type projectRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initProjectDoneMsg struct {
	root string
	err  error
}

type documentRenderedMsg struct {
	conv     domain.Conversion
	sections []section
	err      error
}
