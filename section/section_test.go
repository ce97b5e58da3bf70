package section

import (
	"io"
	"testing"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
)

func newStore() *budget.Store {
	return budget.NewStore(budget.WithLogger(log.New(io.Discard)))
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name        string
		kind        budget.Kind
		draft       Draft
		expectAdded bool
	}{
		{
			name:        "complete income",
			kind:        budget.KindIncome,
			draft:       Draft{Description: "Salary", Amount: "1000"},
			expectAdded: true,
		},
		{
			name:        "bill with empty description",
			kind:        budget.KindBill,
			draft:       Draft{Amount: "200"},
			expectAdded: false,
		},
		{
			name:        "bill with empty amount",
			kind:        budget.KindBill,
			draft:       Draft{Description: "Rent"},
			expectAdded: false,
		},
		{
			name:        "bill ignores category",
			kind:        budget.KindBill,
			draft:       Draft{Description: "Rent", Amount: "400"},
			expectAdded: true,
		},
		{
			name:        "projected without category",
			kind:        budget.KindProjectedExpense,
			draft:       Draft{Description: "Groceries", Amount: "100"},
			expectAdded: false,
		},
		{
			name:        "projected with known category",
			kind:        budget.KindProjectedExpense,
			draft:       Draft{Description: "Groceries", Amount: "100", Category: "Food"},
			expectAdded: true,
		},
		{
			name:        "projected with free text category",
			kind:        budget.KindProjectedExpense,
			draft:       Draft{Description: "Vet", Amount: "60", Category: "Pets"},
			expectAdded: true,
		},
		{
			name:        "non numeric amount",
			kind:        budget.KindIncome,
			draft:       Draft{Description: "Salary", Amount: "abc"},
			expectAdded: false,
		},
		{
			name:        "NaN amount",
			kind:        budget.KindIncome,
			draft:       Draft{Description: "Salary", Amount: "NaN"},
			expectAdded: false,
		},
		{
			name:        "amount beyond int64 minor units",
			kind:        budget.KindBill,
			draft:       Draft{Description: "Mortgage", Amount: "1e19"},
			expectAdded: false,
		},
		{
			name:        "whitespace description counts as filled",
			kind:        budget.KindIncome,
			draft:       Draft{Description: " ", Amount: "5"},
			expectAdded: true,
		},
		{
			name:        "negative amount",
			kind:        budget.KindIncome,
			draft:       Draft{Description: "Refund", Amount: "-25.5"},
			expectAdded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			c := New(tt.kind, store)
			*c.Draft() = tt.draft

			added := c.Submit()
			be.Equal(t, tt.expectAdded, added)

			snap := store.Snapshot()
			count := len(snap.Incomes) + len(snap.Bills) + len(snap.ProjectedExpenses)

			if tt.expectAdded {
				be.Equal(t, 1, count)
				be.Equal(t, Draft{}, *c.Draft())
			} else {
				be.Equal(t, 0, count)
				// the draft is left for correction
				be.Equal(t, tt.draft, *c.Draft())
			}
		})
	}
}

func TestSubmitStoresParsedValues(t *testing.T) {
	store := newStore()

	projected := New(budget.KindProjectedExpense, store)
	*projected.Draft() = Draft{Description: "Groceries", Amount: " 100.5 ", Category: "Food"}
	be.True(t, projected.Submit())

	got := store.ProjectedExpenses()
	be.Equal(t, 1, len(got))
	be.Equal(t, "Groceries", got[0].Description)
	be.Equal(t, 100.5, got[0].Amount)
	be.Equal(t, budget.Food, got[0].Category)
	be.Nonzero(t, got[0].ID)

	bills := New(budget.KindBill, store)
	*bills.Draft() = Draft{Description: "Rent", Amount: "400"}
	be.True(t, bills.Submit())
	be.False(t, store.Bills()[0].Paid)
}

func TestDraftPointerSurvivesSubmit(t *testing.T) {
	c := New(budget.KindIncome, newStore())
	d := c.Draft()

	d.Description = "Salary"
	d.Amount = "1000"
	be.True(t, c.Submit())

	be.Equal(t, "", d.Description)
	be.True(t, d == c.Draft())
}

func TestDelete(t *testing.T) {
	store := newStore()
	c := New(budget.KindIncome, store)

	id := store.AddIncome("Salary", 1000)
	store.AddIncome("Freelance", 200)

	c.Delete(id)
	afterFirst := store.Incomes()
	be.Equal(t, 1, len(afterFirst))

	c.Delete(id)
	be.AllEqual(t, afterFirst, store.Incomes())
}

func TestDeleteOnlyTouchesOwnCollection(t *testing.T) {
	store := budget.NewStore(
		budget.WithLogger(log.New(io.Discard)),
		budget.WithIDGenerator(func() string { return "same" }),
	)
	store.AddIncome("Salary", 1000)
	store.AddBill("Rent", 400)

	New(budget.KindBill, store).Delete("same")

	be.Equal(t, 1, len(store.Incomes()))
	be.Equal(t, 0, len(store.Bills()))
}

func TestToggle(t *testing.T) {
	store := newStore()
	id := store.AddBill("Rent", 400)

	bills := New(budget.KindBill, store)
	be.True(t, bills.Toggle(id))
	be.True(t, store.Bills()[0].Paid)

	be.True(t, bills.Toggle(id))
	be.False(t, store.Bills()[0].Paid)

	before := store.Bills()
	be.True(t, bills.Toggle("X"))
	be.AllEqual(t, before, store.Bills())

	incomes := New(budget.KindIncome, store)
	be.False(t, incomes.Toggle(id))
	be.False(t, store.Bills()[0].Paid)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"200", 200, true},
		{"12.34", 12.34, true},
		{" 7 ", 7, true},
		{"-3", -3, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12,34", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
		{"NaN", 0, false},
		{"1e14", 1e14, true},
		{"-1e14", -1e14, true},
		{"1e15", 0, false},
		{"1e19", 0, false},
		{"-1e19", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, ok := ParseAmount(tt.input)
			be.Equal(t, tt.ok, ok)
			be.Equal(t, tt.expected, amount)
		})
	}
}
