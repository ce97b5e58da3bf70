// Package entries renders one budget collection as a selectable table.
package entries

import (
	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	paidLabel    = "Paid"
	pendingLabel = "Pending"
)

type Colors struct {
	Primary string
}

type Model struct {
	kind      budget.Kind
	entries   table.Model
	ids       []string
	formatter currency.Formatter
}

func columnsFor(kind budget.Kind) []table.Column {
	switch kind {
	case budget.KindBill:
		return []table.Column{
			{Title: "Description", Width: 30},
			{Title: "Amount", Width: 15},
			{Title: "Status", Width: 10},
		}
	case budget.KindProjectedExpense:
		return []table.Column{
			{Title: "Description", Width: 30},
			{Title: "Amount", Width: 15},
			{Title: "Category", Width: 15},
		}
	default:
		return []table.Column{
			{Title: "Description", Width: 30},
			{Title: "Amount", Width: 15},
		}
	}
}

func New(kind budget.Kind, colors Colors, formatter currency.Formatter) Model {
	entries := table.New(
		table.WithColumns(columnsFor(kind)),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(colors.Primary))

	entries.SetStyles(tableStyle)

	return Model{kind: kind, entries: entries, formatter: formatter}
}

func (m *Model) Kind() budget.Kind {
	return m.kind
}

func (m *Model) SetFocus(focus bool) {
	if focus {
		m.entries.Focus()
	} else {
		m.entries.Blur()
	}
}

func (m *Model) SetSize(width, height int) {
	m.entries.SetHeight(height)
	m.entries.SetWidth(width)
}

// SetSnapshot refreshes the rows from the collection matching the model's kind.
func (m *Model) SetSnapshot(snap budget.Snapshot) {
	var rows []table.Row
	var ids []string

	switch m.kind {
	case budget.KindIncome:
		for _, i := range snap.Incomes {
			ids = append(ids, i.ID)
			rows = append(rows, table.Row{i.Description, m.formatter.Format(i.Amount)})
		}
	case budget.KindBill:
		for _, b := range snap.Bills {
			status := pendingLabel
			if b.Paid {
				status = paidLabel
			}
			ids = append(ids, b.ID)
			rows = append(rows, table.Row{b.Description, m.formatter.Format(b.Amount), status})
		}
	case budget.KindProjectedExpense:
		for _, p := range snap.ProjectedExpenses {
			ids = append(ids, p.ID)
			rows = append(rows, table.Row{p.Description, m.formatter.Format(p.Amount), p.Category.String()})
		}
	}

	m.ids = ids
	m.entries.SetRows(rows)

	// keep the cursor on a row after deletions
	if c := m.entries.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.entries.SetCursor(len(rows) - 1)
	}
}

// SelectedID returns the id of the highlighted record, or false when empty.
func (m *Model) SelectedID() (string, bool) {
	c := m.entries.Cursor()
	if c < 0 || c >= len(m.ids) {
		return "", false
	}

	return m.ids[c], true
}

func (m *Model) Len() int {
	return len(m.ids)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return *m, cmd
}

func (m *Model) View() string {
	return m.entries.View()
}
