package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.sessionState {
	case summaryState:
		b.WriteString(m.overview.View())
	case incomeState, billsState, projectedState:
		b.WriteString(sectionView(m))
	case sectionForm:
		b.WriteString(sectionFormView(m))
	case configView:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	return m.styles.titleStyle.Render(
		fmt.Sprintf("budgettui | %s | %s", m.sessionState.String(), m.currency),
	)
}

// renderTabs draws the tab bar; a form keeps its section tab highlighted.
func (m model) renderTabs() string {
	active := m.sessionState
	if active == sectionForm {
		active = stateFor(m.formKind)
	}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, titleCaser.String(t.String()))
		if t == active {
			rendered[i] = m.styles.activeTabStyle.Render(label)
		} else {
			rendered[i] = m.styles.tabStyle.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

func sectionView(m model) string {
	kind, _ := m.sessionState.kind()
	sec := m.sections[kind]
	if sec.Len() == 0 {
		return m.theme.mutedStyle().Render(
			fmt.Sprintf("No %s yet, press a to add one", m.sessionState.String()),
		)
	}

	return sec.View()
}
