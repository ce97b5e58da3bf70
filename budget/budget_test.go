package budget

import (
	"errors"
	"strconv"
	"testing"

	"github.com/carlmjohnson/be"
)

// sequentialIDs returns a generator producing "1", "2", ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	tests := []struct {
		name  string
		newID IDGenerator
	}{
		{name: "uuid generator", newID: NewID},
		{name: "sequential generator", newID: sequentialIDs()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var incomes []Income
			seen := make(map[string]bool)

			for i := range 50 {
				var id string
				incomes, id = Add(incomes, Income{Description: "Salary", Amount: float64(i)}, tt.newID)

				be.Equal(t, i+1, len(incomes))
				be.False(t, seen[id])
				seen[id] = true
				be.Equal(t, id, incomes[i].ID)
			}
		})
	}
}

func TestAddDoesNotModifyInput(t *testing.T) {
	original := make([]Bill, 1, 4)
	original[0] = Bill{ID: "a", Description: "Rent", Amount: 400}

	added, id := Add(original, Bill{Description: "Water", Amount: 50}, sequentialIDs())

	be.Equal(t, 1, len(original))
	be.Equal(t, 2, len(added))
	be.Equal(t, "1", id)
	be.Equal(t, Bill{ID: "1", Description: "Water", Amount: 50}, added[1])

	// writing into the original's spare capacity must not show up in the result
	_ = append(original, Bill{ID: "x"})
	be.Equal(t, "1", added[1].ID)
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	var projected []ProjectedExpense
	gen := sequentialIDs()

	for _, d := range []string{"Groceries", "Bus", "Cinema"} {
		projected, _ = Add(projected, ProjectedExpense{Description: d, Amount: 10, Category: Other}, gen)
	}

	be.Equal(t, "Groceries", projected[0].Description)
	be.Equal(t, "Bus", projected[1].Description)
	be.Equal(t, "Cinema", projected[2].Description)
}

func TestRemove(t *testing.T) {
	incomes := []Income{
		{ID: "1", Description: "Salary", Amount: 1000},
		{ID: "2", Description: "Freelance", Amount: 200},
		{ID: "3", Description: "Gift", Amount: 50},
	}

	tests := []struct {
		name     string
		id       string
		expected []Income
	}{
		{
			name:     "remove middle",
			id:       "2",
			expected: []Income{incomes[0], incomes[2]},
		},
		{
			name:     "remove first",
			id:       "1",
			expected: []Income{incomes[1], incomes[2]},
		},
		{
			name:     "unknown id is a no-op",
			id:       "42",
			expected: incomes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Remove(incomes, tt.id)
			be.AllEqual(t, tt.expected, result)
			// input untouched
			be.Equal(t, 3, len(incomes))
			be.Equal(t, "2", incomes[1].ID)
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	bills := []Bill{
		{ID: "1", Description: "Rent", Amount: 400},
		{ID: "2", Description: "Water", Amount: 50, Paid: true},
	}

	for _, id := range []string{"1", "2", "missing"} {
		once := Remove(bills, id)
		twice := Remove(once, id)
		be.AllEqual(t, once, twice)
	}
}

func TestRemoveEmptyCollection(t *testing.T) {
	var projected []ProjectedExpense
	be.Equal(t, 0, len(Remove(projected, "1")))
}

func TestTogglePaid(t *testing.T) {
	bills := []Bill{
		{ID: "1", Description: "Rent", Amount: 400},
		{ID: "2", Description: "Water", Amount: 50, Paid: true},
	}

	toggled := TogglePaid(bills, "1")
	be.True(t, toggled[0].Paid)
	be.True(t, toggled[1].Paid)
	// input untouched
	be.False(t, bills[0].Paid)

	back := TogglePaid(toggled, "1")
	be.AllEqual(t, bills, back)

	be.AllEqual(t, bills, TogglePaid(TogglePaid(bills, "2"), "2"))
}

func TestTogglePaidUnknownID(t *testing.T) {
	bills := []Bill{{ID: "1", Description: "Rent", Amount: 400}}
	be.AllEqual(t, bills, TogglePaid(bills, "X"))
}

func TestCategoryKnown(t *testing.T) {
	for _, c := range Categories {
		be.True(t, c.Known())
	}

	be.False(t, Category("Pets").Known())
	be.False(t, Category("").Known())
	be.Equal(t, 6, len(Categories))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"income", KindIncome},
		{"Incomes", KindIncome},
		{"bill", KindBill},
		{" bills ", KindBill},
		{"projected", KindProjectedExpense},
		{"projected-expenses", KindProjectedExpense},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			be.NilErr(t, err)
			be.Equal(t, tt.expected, kind)
		})
	}

	_, err := ParseKind("savings")
	be.True(t, errors.Is(err, ErrUnknownKind))
}

func TestKindString(t *testing.T) {
	be.Equal(t, "income", KindIncome.String())
	be.Equal(t, "bills", KindBill.String())
	be.Equal(t, "projected", KindProjectedExpense.String())
	be.Equal(t, "unknown", Kind(99).String())
}
