package budget

import "slices"

// Category labels a projected expense. Any string is accepted;
// Categories lists the values offered for selection.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Health        Category = "Health"
	Education     Category = "Education"
	Other         Category = "Other"
)

// Categories is the fixed set of categories offered when adding a projected expense.
var Categories = []Category{Food, Transport, Entertainment, Health, Education, Other}

// Known reports whether c is one of Categories.
func (c Category) Known() bool {
	return slices.Contains(Categories, c)
}

func (c Category) String() string {
	return string(c)
}
