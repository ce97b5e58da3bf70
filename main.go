package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/config"
	"github.com/Rshep3087/budgettui/entries"
	"github.com/Rshep3087/budgettui/overview"
	"github.com/Rshep3087/budgettui/section"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type model struct {
	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	sessionState         sessionState
	previousSessionState sessionState

	width  int
	height int

	store       *budget.Store
	currency    string
	controllers map[budget.Kind]*section.Controller
	sections    map[budget.Kind]*entries.Model
	overview    overview.Model
	configView  config.Model

	// add form of the active section
	form     *huh.Form
	formKind budget.Kind
}

func newModel(sess *session) model {
	theme := newTheme(sess.config.Colors)

	m := model{
		keys:         initializeKeyMap(),
		help:         createHelpModel(theme),
		theme:        theme,
		styles:       createStyles(theme),
		sessionState: summaryState,
		store:        sess.store,
		currency:     sess.formatter.Code(),
		controllers:  make(map[budget.Kind]*section.Controller, len(budget.Kinds)),
		sections:     make(map[budget.Kind]*entries.Model, len(budget.Kinds)),
		overview: overview.New(
			overview.WithStyles(overviewStyles(theme)),
			overview.WithFormatter(sess.formatter),
		),
		configView: config.New(theme.Primary),
	}

	for _, kind := range budget.Kinds {
		m.controllers[kind] = section.New(kind, sess.store)
		sec := entries.New(kind, entries.Colors{Primary: string(theme.Primary)}, sess.formatter)
		m.sections[kind] = &sec
	}

	m.configView.SetConfig(sess.config)
	m.refresh()
	m.switchTo(summaryState)

	return m
}

func (m model) Init() tea.Cmd {
	return tea.WindowSize()
}

// refresh pushes a fresh snapshot of the store to every view.
func (m *model) refresh() {
	snap := m.store.Snapshot()
	m.overview.SetSnapshot(snap)
	for _, sec := range m.sections {
		sec.SetSnapshot(snap)
	}
}

// switchTo changes the visible view, moving focus along with it.
func (m *model) switchTo(state sessionState) {
	if state != m.sessionState {
		m.previousSessionState = m.sessionState
	}
	m.sessionState = state

	kind, isSection := state.kind()
	for k, sec := range m.sections {
		sec.SetFocus(isSection && k == kind)
	}
	m.configView.SetFocus(state == configView)

	m.keys.add.SetEnabled(isSection)
	m.keys.delete.SetEnabled(isSection)
	m.keys.togglePaid.SetEnabled(isSection && kind == budget.KindBill)
}

func rootAction(ctx context.Context, sess *session) error {
	// keep log output off the alt screen
	if sess.config.Debug {
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	p := tea.NewProgram(newModel(sess), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run budgettui: %w", err)
	}

	return nil
}

func main() {
	Execute()
}
