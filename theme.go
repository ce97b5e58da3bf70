package main

import (
	"github.com/Rshep3087/budgettui/config"
	"github.com/Rshep3087/budgettui/overview"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Background    lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#ffd644"),
		Error:         parseColor(colors.Error, "#ff0000"),
		Success:       parseColor(colors.Success, "#22ba46"),
		Warning:       parseColor(colors.Warning, "#e05951"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#00ff00"),
		Expense:       parseColor(colors.Expense, "#ff0000"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Background:    parseColor(colors.Background, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor parses a color string (hex or ANSI) and returns a lipgloss.Color
// Falls back to defaultColor if input is empty.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	// lipgloss.Color accepts both hex colors ("#ff0000") and ANSI codes ("21")
	return lipgloss.Color(colorStr)
}

// overviewStyles builds the summary widget styles from the theme.
func overviewStyles(theme Theme) overview.Styles {
	return overview.Styles{
		IncomeStyle:    lipgloss.NewStyle().Foreground(theme.Income),
		SpentStyle:     lipgloss.NewStyle().Foreground(theme.Expense),
		AvailableStyle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		LabelStyle:     lipgloss.NewStyle().Foreground(theme.SecondaryText),
		SummaryStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, standardMargin),
		PaidStyle:      lipgloss.NewStyle().Foreground(theme.Success),
		UnpaidStyle:    lipgloss.NewStyle().Foreground(theme.Warning),
		DeficitStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		CategoryColors: overview.DefaultCategoryColors(),
	}
}

func (t Theme) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}
