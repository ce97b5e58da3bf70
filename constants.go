package main

import "github.com/Rshep3087/budgettui/budget"

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Session states
type sessionState int

const (
	summaryState sessionState = iota
	incomeState
	billsState
	projectedState
	sectionForm
	configView
)

// tabs lists the states reachable with tab / shift+tab, in order.
var tabs = []sessionState{summaryState, incomeState, billsState, projectedState}

func (ss sessionState) String() string {
	switch ss {
	case summaryState:
		return "summary"
	case incomeState:
		return "income"
	case billsState:
		return "bills"
	case projectedState:
		return "projected expenses"
	case sectionForm:
		return "add entry"
	case configView:
		return "configuration"
	}

	return "unknown"
}

// kind returns the collection shown in a section state.
func (ss sessionState) kind() (budget.Kind, bool) {
	switch ss {
	case incomeState:
		return budget.KindIncome, true
	case billsState:
		return budget.KindBill, true
	case projectedState:
		return budget.KindProjectedExpense, true
	}

	return 0, false
}

// stateFor returns the section state showing kind.
func stateFor(kind budget.Kind) sessionState {
	switch kind {
	case budget.KindBill:
		return billsState
	case budget.KindProjectedExpense:
		return projectedState
	default:
		return incomeState
	}
}
