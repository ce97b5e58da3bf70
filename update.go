package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check shell keys first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handleKeyPress(msg, &m); handled {
			log.Debug("key press handled by shell")
			return m, cmd
		}
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleWindowSize(msg)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case summaryState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case incomeState, billsState, projectedState:
		kind, _ := m.sessionState.kind()
		sec := m.sections[kind]
		*sec, cmd = sec.Update(msg)
		return m, cmd

	case sectionForm:
		return updateSectionForm(msg, &m)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd
	}

	return m, nil
}
