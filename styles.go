package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const standardMargin = 2

type styles struct {
	docStyle       lipgloss.Style
	titleStyle     lipgloss.Style
	activeTabStyle lipgloss.Style
	tabStyle       lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		docStyle: lipgloss.NewStyle().Margin(1, standardMargin),
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		activeTabStyle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Background(theme.Background).
			Bold(true).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(theme.Border).
			Padding(0, 1),
		tabStyle: lipgloss.NewStyle().
			Foreground(theme.SecondaryText).
			Border(lipgloss.HiddenBorder(), true, true, false, true).
			Padding(0, 1),
	}
}

func createHelpModel(theme Theme) help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = " + "
	helpModel.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle().Foreground(theme.SecondaryText),
		ShortKey:       lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		ShortDesc:      lipgloss.NewStyle().Foreground(theme.Text),
		ShortSeparator: lipgloss.NewStyle().Foreground(theme.SecondaryText),
		FullKey:        lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		FullDesc:       lipgloss.NewStyle().Foreground(theme.Text),
		FullSeparator:  lipgloss.NewStyle().Foreground(theme.SecondaryText),
	}
	return helpModel
}
