package main

import (
	"slices"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	summary    key.Binding
	income     key.Binding
	bills      key.Binding
	projected  key.Binding
	nextTab    key.Binding
	prevTab    key.Binding
	add        key.Binding
	delete     key.Binding
	togglePaid key.Binding
	config     key.Binding
	escape     key.Binding
	fullHelp   key.Binding
	quit       key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.nextTab,
		km.add,
		km.delete,
		km.togglePaid,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.summary,
			km.income,
			km.bills,
			km.projected,
			km.nextTab,
			km.prevTab,
		},
		{
			km.add,
			km.delete,
			km.togglePaid,
		},
		{
			km.config,
			km.escape,
			km.quit,
			km.fullHelp,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		summary: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "summary"),
		),
		income: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "income"),
		),
		bills: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "bills"),
		),
		projected: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "projected expenses"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		togglePaid: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle paid"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

// handleKeyPress reports whether the key was consumed by the shell.
// Unconsumed keys are passed on to the active view.
func handleKeyPress(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	log.Debug("key pressed", "key", msg.String())

	// forms get every key except ctrl+c and esc
	if m.sessionState == sectionForm {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return true, tea.Quit
		case key.Matches(msg, m.keys.escape):
			return true, handleEscape(m)
		}
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return true, tea.Quit
	case key.Matches(msg, m.keys.escape):
		return true, handleEscape(m)
	case key.Matches(msg, m.keys.fullHelp):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	}

	if handleTabKeys(msg, m) {
		return true, nil
	}

	return handleSectionKeys(msg, m)
}

func handleTabKeys(msg tea.KeyMsg, m *model) bool {
	switch {
	case key.Matches(msg, m.keys.summary):
		m.switchTo(summaryState)
	case key.Matches(msg, m.keys.income):
		m.switchTo(incomeState)
	case key.Matches(msg, m.keys.bills):
		m.switchTo(billsState)
	case key.Matches(msg, m.keys.projected):
		m.switchTo(projectedState)
	case key.Matches(msg, m.keys.nextTab):
		m.switchTo(cycleTab(m.sessionState, 1))
	case key.Matches(msg, m.keys.prevTab):
		m.switchTo(cycleTab(m.sessionState, -1))
	case key.Matches(msg, m.keys.config):
		m.switchTo(configView)
	default:
		return false
	}

	return true
}

// cycleTab returns the tab step positions away from current, wrapping around.
// States outside the tab bar start from the summary.
func cycleTab(current sessionState, step int) sessionState {
	i := slices.Index(tabs, current)
	if i < 0 {
		i = 0
	}

	return tabs[(i+step+len(tabs))%len(tabs)]
}

func handleSectionKeys(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	kind, ok := m.sessionState.kind()
	if !ok {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.add):
		return true, openSectionForm(m, kind)

	case key.Matches(msg, m.keys.delete):
		if id, ok := m.sections[kind].SelectedID(); ok {
			m.controllers[kind].Delete(id)
			m.refresh()
		}
		return true, nil

	case key.Matches(msg, m.keys.togglePaid):
		if kind != budget.KindBill {
			return false, nil
		}
		if id, ok := m.sections[kind].SelectedID(); ok && m.controllers[kind].Toggle(id) {
			m.refresh()
		}
		return true, nil
	}

	return false, nil
}

// handleEscape leaves a form for its section, keeping the draft,
// and returns to the summary from anywhere else.
func handleEscape(m *model) tea.Cmd {
	if m.sessionState == sectionForm {
		log.Debug("handling escape in section form", "kind", m.formKind)
		if m.form != nil {
			m.form.State = huh.StateAborted
		}
		m.form = nil
		m.switchTo(stateFor(m.formKind))
		return nil
	}

	m.switchTo(summaryState)
	return nil
}
