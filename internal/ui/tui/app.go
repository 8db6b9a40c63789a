package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenSection
)

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	active section
	toast  string
	busy   bool

	projectFound bool
	projectRoot  string
	cwd          string
	output       string
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sections"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshProject(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case projectRefreshedMsg:
		m.cwd = msg.cwd
		m.projectFound = msg.found
		m.projectRoot = msg.root
		if !msg.found {
			return m, nil
		}
		m.busy = true
		return m, cmdRenderDocument(m.deps, msg.root)

	case initProjectDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Created .pomyaml.yaml"
		return m, cmdRefreshProject(m.deps)

	case documentRenderedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if m.deps.Logger != nil {
				m.deps.Logger.Error("view.render.failed", "root", m.projectRoot, "err", msg.err)
			}
			return m, nil
		}
		m.toast = ""
		m.output = msg.conv.Output
		items := make([]list.Item, 0, len(msg.sections))
		for _, s := range msg.sections {
			items = append(items, s)
		}
		return m, m.list.SetItems(items)

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "enter":
			if m.scr == screenHome {
				if s, ok := m.list.SelectedItem().(section); ok {
					m.active = s
					m.scr = screenSection
				}
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "r":
			if m.projectFound && !m.busy {
				m.busy = true
				return m, cmdRenderDocument(m.deps, m.projectRoot)
			}

		case "i":
			if !m.projectFound && m.cwd != "" {
				return m, cmdInitProjectHere(m.deps, m.cwd)
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("pomyaml") + "\n" +
		m.theme.Subtitle.Render("canonical YAML preview of the project model") + "\n"

	var banner string
	switch {
	case m.projectFound && m.output != "":
		rel, err := filepath.Rel(m.projectRoot, m.output)
		if err != nil {
			rel = m.output
		}
		banner = m.theme.Help.Render(fmt.Sprintf("Project: %s  →  %s", m.projectRoot, rel))
	case m.projectFound:
		banner = m.theme.Help.Render(fmt.Sprintf("Project: %s", m.projectRoot))
	default:
		banner = m.theme.Card.Render(
			"⚠ No project found.\n\nPress " + m.theme.Key.Render("i") + " to create .pomyaml.yaml here.",
		)
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenSection:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.active.key),
				m.active.body,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card)

	default:
		body := m.list.View()
		if m.busy {
			body = "Rendering…"
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • r re-render • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)
	}
}
