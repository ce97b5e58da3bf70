package main

import tea "github.com/charmbracelet/bubbletea"

// rows used by the title, tab bar and help.
const takenHeight = 8

func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	m.width = msg.Width - h
	m.height = msg.Height - v - takenHeight

	m.overview.SetSize(m.width, m.height)
	for _, sec := range m.sections {
		sec.SetSize(m.width, m.height)
	}
	m.configView.SetSize(m.width, m.height)

	m.help.Width = msg.Width

	if m.form != nil {
		m.form = m.form.WithWidth(m.width).WithHeight(m.height)
	}

	return m, nil
}
