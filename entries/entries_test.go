package entries

import (
	"strings"
	"testing"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/carlmjohnson/be"
	tea "github.com/charmbracelet/bubbletea"
)

func snapshot() budget.Snapshot {
	return budget.Snapshot{
		Incomes: []budget.Income{
			{ID: "i1", Description: "Salary", Amount: 1000},
		},
		Bills: []budget.Bill{
			{ID: "b1", Description: "Rent", Amount: 400},
			{ID: "b2", Description: "Water", Amount: 50, Paid: true},
		},
		ProjectedExpenses: []budget.ProjectedExpense{
			{ID: "p1", Description: "Groceries", Amount: 100, Category: budget.Food},
			{ID: "p2", Description: "Vet", Amount: 60, Category: "Pets"},
			{ID: "p3", Description: "Bus", Amount: 30, Category: budget.Transport},
		},
	}
}

func TestNewColumns(t *testing.T) {
	tests := []struct {
		name     string
		kind     budget.Kind
		expected []string
	}{
		{name: "income", kind: budget.KindIncome, expected: []string{"Description", "Amount"}},
		{name: "bills", kind: budget.KindBill, expected: []string{"Description", "Amount", "Status"}},
		{name: "projected", kind: budget.KindProjectedExpense, expected: []string{"Description", "Amount", "Category"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.kind, Colors{Primary: "#ff0000"}, currency.Default())

			columns := m.entries.Columns()
			be.Equal(t, len(tt.expected), len(columns))
			for i, title := range tt.expected {
				be.Equal(t, title, columns[i].Title)
			}
			be.Equal(t, tt.kind, m.Kind())
		})
	}
}

func TestSetSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		kind     budget.Kind
		expected int
	}{
		{name: "income", kind: budget.KindIncome, expected: 1},
		{name: "bills", kind: budget.KindBill, expected: 2},
		{name: "projected", kind: budget.KindProjectedExpense, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.kind, Colors{Primary: "#ff0000"}, currency.Default())
			m.SetSnapshot(snapshot())

			be.Equal(t, tt.expected, len(m.entries.Rows()))
			be.Equal(t, tt.expected, m.Len())
		})
	}
}

func TestBillStatus(t *testing.T) {
	m := New(budget.KindBill, Colors{Primary: "#ff0000"}, currency.Default())
	m.SetSnapshot(snapshot())

	rows := m.entries.Rows()
	be.Equal(t, pendingLabel, rows[0][2])
	be.Equal(t, paidLabel, rows[1][2])
	be.Equal(t, currency.Default().Format(400), rows[0][1])
}

func TestSelectedID(t *testing.T) {
	m := New(budget.KindProjectedExpense, Colors{Primary: "#ff0000"}, currency.Default())

	_, ok := m.SelectedID()
	be.False(t, ok)

	m.SetSnapshot(snapshot())
	m.SetFocus(true)
	m.SetSize(80, 10)

	id, ok := m.SelectedID()
	be.True(t, ok)
	be.Equal(t, "p1", id)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	id, ok = m.SelectedID()
	be.True(t, ok)
	be.Equal(t, "p2", id)
}

func TestSelectionClampsAfterRemoval(t *testing.T) {
	m := New(budget.KindBill, Colors{Primary: "#ff0000"}, currency.Default())
	m.SetFocus(true)
	m.SetSize(80, 10)
	m.SetSnapshot(snapshot())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	id, _ := m.SelectedID()
	be.Equal(t, "b2", id)

	snap := snapshot()
	snap.Bills = snap.Bills[:1]
	m.SetSnapshot(snap)

	id, ok := m.SelectedID()
	be.True(t, ok)
	be.Equal(t, "b1", id)
}

func TestInit(t *testing.T) {
	m := New(budget.KindIncome, Colors{Primary: "#ff0000"}, currency.Default())

	cmd := m.Init()
	if cmd != nil {
		t.Errorf("Expected nil command, got %v", cmd)
	}
}

func TestView(t *testing.T) {
	m := New(budget.KindIncome, Colors{Primary: "#ff0000"}, currency.Default())
	m.SetSize(80, 10)

	view := m.View()
	be.Nonzero(t, view)

	m.SetSnapshot(snapshot())
	view = m.View()
	if !strings.Contains(view, "Salary") {
		t.Errorf("Expected view to contain 'Salary', got: %s", view)
	}
}
