package overview

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Model defines the state for the budget summary widget.
type Model struct {
	Styles    Styles
	Viewport  viewport.Model
	summary   budget.Summary
	breakdown []budget.CategoryTotal
	formatter currency.Formatter
}

type Styles struct {
	IncomeStyle    lipgloss.Style
	SpentStyle     lipgloss.Style
	AvailableStyle lipgloss.Style
	LabelStyle     lipgloss.Style
	SummaryStyle   lipgloss.Style
	PaidStyle      lipgloss.Style
	UnpaidStyle    lipgloss.Style
	// DeficitStyle draws a negative available amount
	DeficitStyle   lipgloss.Style
	// CategoryColors maps known categories to their badge color,
	// anything else is drawn with the Other color
	CategoryColors map[budget.Category]lipgloss.Color
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		AvailableStyle: lipgloss.NewStyle().Bold(true),
		LabelStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		SummaryStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		PaidStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("#22ba46")),
		UnpaidStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e05951")),
		DeficitStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		CategoryColors: DefaultCategoryColors(),
	}
}

// DefaultCategoryColors returns the badge color of every known category.
func DefaultCategoryColors() map[budget.Category]lipgloss.Color {
	return map[budget.Category]lipgloss.Color{
		budget.Food:          lipgloss.Color("#c2410c"),
		budget.Transport:     lipgloss.Color("#1d4ed8"),
		budget.Entertainment: lipgloss.Color("#7e22ce"),
		budget.Health:        lipgloss.Color("#b91c1c"),
		budget.Education:     lipgloss.Color("#15803d"),
		budget.Other:         lipgloss.Color("#6b7280"),
	}
}

// CategoryColor returns the color for c, falling back to the Other color.
func (s Styles) CategoryColor(c budget.Category) lipgloss.Color {
	if color, ok := s.CategoryColors[c]; ok {
		return color
	}

	return s.CategoryColors[budget.Other]
}

type Option func(*Model)

func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

func WithFormatter(f currency.Formatter) Option {
	return func(m *Model) {
		m.formatter = f
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:    defaultStyles(),
		Viewport:  viewport.New(0, 20),
		formatter: currency.Default(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetSnapshot recomputes the summary and breakdown from the store snapshot.
func (m *Model) SetSnapshot(snap budget.Snapshot) {
	m.summary = snap.Summary()
	m.breakdown = budget.ProjectedByCategory(snap.ProjectedExpenses)
	m.UpdateViewport()
}

func (m *Model) SetFormatter(f currency.Formatter) {
	m.formatter = f
	m.UpdateViewport()
}

func (m Model) Summary() budget.Summary {
	return m.summary
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

func (m *Model) UpdateViewport() {
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top,
		m.summaryView(),
		m.billsView(),
		m.breakdownView(),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.availableView(),
			mainContent,
		),
	)
}

func (m Model) availableView() string {
	style := m.Styles.IncomeStyle
	if m.summary.Available < 0 {
		style = m.Styles.DeficitStyle
	}

	return m.Styles.SummaryStyle.Render(
		fmt.Sprintf("%s %s",
			m.Styles.AvailableStyle.Render("Available:"),
			style.Bold(true).Render(m.formatter.Format(m.summary.Available)),
		),
	)
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Income: %s\n", m.Styles.IncomeStyle.Render(m.formatter.Format(m.summary.TotalIncome))))
	b.WriteString(fmt.Sprintf("Expenses: %s", m.Styles.SpentStyle.Render(m.formatter.Format(m.summary.Expenses()))))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m Model) billsView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n",
		m.Styles.LabelStyle.Render("Paid bills:"),
		m.Styles.PaidStyle.Render(m.formatter.Format(m.summary.PaidBills)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n",
		m.Styles.LabelStyle.Render("Unpaid bills:"),
		m.Styles.UnpaidStyle.Render(m.formatter.Format(m.summary.UnpaidBills)),
	))
	b.WriteString(fmt.Sprintf("%s %s",
		m.Styles.LabelStyle.Render("Projected:"),
		m.formatter.Format(m.summary.TotalProjected),
	))

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m Model) breakdownView() string {
	if len(m.breakdown) == 0 {
		return m.Styles.SummaryStyle.Render(
			lipgloss.JoinVertical(lipgloss.Top,
				lipgloss.NewStyle().Bold(true).Render("Projected by Category"),
				m.Styles.LabelStyle.Render("No projected expenses"),
			),
		)
	}

	return m.Styles.SummaryStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			lipgloss.NewStyle().Bold(true).Render("Projected by Category"),
			table.New(
				table.WithColumns([]table.Column{
					{Title: "Category", Width: 20},
					{Title: "Projected", Width: 15},
					{Title: "% of Total", Width: 10},
				}),
				table.WithRows(m.breakdownRows()),
				table.WithHeight(len(m.breakdown)+1),
			).View(),
			m.legendView(),
		),
	)
}

func (m Model) breakdownRows() []table.Row {
	rows := make([]table.Row, 0, len(m.breakdown))
	for _, ct := range m.breakdown {
		percentage := 0.0
		if m.summary.TotalProjected != 0 {
			percentage = ct.Amount / m.summary.TotalProjected * 100
		}

		rows = append(rows, table.Row{
			titleCaser.String(ct.Category.String()),
			m.formatter.Format(ct.Amount),
			fmt.Sprintf("%.2f%%", percentage),
		})
	}

	return rows
}

// legendView renders the breakdown categories as colored badges.
func (m Model) legendView() string {
	badges := make([]string, 0, len(m.breakdown))
	for _, ct := range m.breakdown {
		badges = append(badges, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(m.Styles.CategoryColor(ct.Category)).
			Padding(0, 1).
			Render(titleCaser.String(ct.Category.String())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}
