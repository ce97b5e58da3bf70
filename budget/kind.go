package budget

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the three collections.
type Kind int

const (
	KindIncome Kind = iota
	KindBill
	KindProjectedExpense
)

// Kinds lists every collection in display order.
var Kinds = []Kind{KindIncome, KindBill, KindProjectedExpense}

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown entry kind")

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindBill:
		return "bills"
	case KindProjectedExpense:
		return "projected"
	}

	return "unknown"
}

// ParseKind parses the command line spelling of a kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "incomes":
		return KindIncome, nil
	case "bill", "bills":
		return KindBill, nil
	case "projected", "projected-expense", "projected-expenses", "expenses":
		return KindProjectedExpense, nil
	}

	return 0, fmt.Errorf("%w: %q (must be one of income, bills, projected)", ErrUnknownKind, s)
}
