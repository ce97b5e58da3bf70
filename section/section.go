// Package section implements the per-collection input controllers.
// A Controller keeps the draft the user is typing and turns a submit into
// a single store mutation.
package section

import (
	"strconv"
	"strings"

	"github.com/Rshep3087/budgettui/budget"
	"github.com/Rshep3087/budgettui/currency"
	"github.com/charmbracelet/log"
)

// Commands is the mutation surface a controller is allowed to use.
// *budget.Store satisfies it.
type Commands interface {
	AddIncome(description string, amount float64) string
	AddBill(description string, amount float64) string
	AddProjectedExpense(description string, amount float64, category budget.Category) string
	Remove(kind budget.Kind, id string)
	TogglePaid(id string)
}

// Draft is the transient form state.
type Draft struct {
	Description string
	Amount      string
	Category    string
}

// Controller owns the draft for one collection.
type Controller struct {
	kind  budget.Kind
	cmds  Commands
	draft *Draft
}

// New creates a controller for kind issuing commands against cmds.
func New(kind budget.Kind, cmds Commands) *Controller {
	return &Controller{kind: kind, cmds: cmds, draft: &Draft{}}
}

func (c *Controller) Kind() budget.Kind {
	return c.kind
}

// Draft returns the draft the form binds to. The pointer stays valid
// across submissions.
func (c *Controller) Draft() *Draft {
	return c.draft
}

// Submit adds a record built from the draft. An incomplete draft or an
// amount that is not a finite number leaves everything untouched and
// returns false.
func (c *Controller) Submit() bool {
	d := c.draft

	if d.Description == "" || d.Amount == "" {
		log.Debug("submit ignored, missing fields", "kind", c.kind)
		return false
	}

	if c.kind == budget.KindProjectedExpense && d.Category == "" {
		log.Debug("submit ignored, missing category", "kind", c.kind)
		return false
	}

	amount, ok := ParseAmount(d.Amount)
	if !ok {
		log.Debug("submit ignored, invalid amount", "kind", c.kind, "amount", d.Amount)
		return false
	}

	switch c.kind {
	case budget.KindIncome:
		c.cmds.AddIncome(d.Description, amount)
	case budget.KindBill:
		c.cmds.AddBill(d.Description, amount)
	case budget.KindProjectedExpense:
		c.cmds.AddProjectedExpense(d.Description, amount, budget.Category(d.Category))
	default:
		return false
	}

	*d = Draft{}
	return true
}

// Delete removes the record with id from this controller's collection.
func (c *Controller) Delete(id string) {
	c.cmds.Remove(c.kind, id)
}

// Toggle flips the paid flag of a bill. It is a no-op for other kinds.
func (c *Controller) Toggle(id string) bool {
	if c.kind != budget.KindBill {
		return false
	}

	c.cmds.TogglePaid(id)
	return true
}

// ParseAmount parses a user-entered amount. Surrounding spaces are ignored;
// NaN, infinities and magnitudes above currency.MaxAmount are rejected.
func ParseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}

	if !currency.InRange(amount) {
		return 0, false
	}

	return amount, true
}
