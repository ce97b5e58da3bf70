// Package budget holds the household budget state: incomes, bills and
// projected expenses, and the totals derived from them.
package budget

import (
	"slices"

	"github.com/google/uuid"
)

// Income is money coming in for the month.
type Income struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Bill is a recurring bill that can be marked as paid.
type Bill struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Paid        bool    `json:"paid"`
}

// ProjectedExpense is a planned expense with a category.
type ProjectedExpense struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Category    Category `json:"category"`
}

// Entry is implemented by every record kind so the collection
// operations can be shared.
type Entry[T any] interface {
	Identifier() string
	WithID(id string) T
}

func (i Income) Identifier() string { return i.ID }

func (i Income) WithID(id string) Income {
	i.ID = id
	return i
}

func (b Bill) Identifier() string { return b.ID }

func (b Bill) WithID(id string) Bill {
	b.ID = id
	return b
}

func (p ProjectedExpense) Identifier() string { return p.ID }

func (p ProjectedExpense) WithID(id string) ProjectedExpense {
	p.ID = id
	return p
}

// IDGenerator returns a new record identifier.
type IDGenerator func() string

// NewID is the default IDGenerator.
func NewID() string {
	return uuid.NewString()
}

// Add returns a new collection with record appended under a fresh ID.
// The input collection is never modified.
func Add[T Entry[T]](collection []T, record T, newID IDGenerator) ([]T, string) {
	id := newID()

	out := make([]T, 0, len(collection)+1)
	out = append(out, collection...)
	out = append(out, record.WithID(id))

	return out, id
}

// Remove returns the collection without the record matching id.
// Removing an unknown id returns an equal collection.
func Remove[T Entry[T]](collection []T, id string) []T {
	out := slices.Clone(collection)
	return slices.DeleteFunc(out, func(e T) bool {
		return e.Identifier() == id
	})
}

// TogglePaid returns the bills with the paid flag of the matching bill inverted.
func TogglePaid(bills []Bill, id string) []Bill {
	out := slices.Clone(bills)
	for i := range out {
		if out[i].ID == id {
			out[i].Paid = !out[i].Paid
		}
	}
	return out
}
