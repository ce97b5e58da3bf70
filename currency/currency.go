// Package currency renders budget amounts for display.
//
// Amounts are rounded to the nearest whole unit of the currency before they
// are formatted, so a currency with cents still shows ".00". Stored amounts
// are never changed.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCode is used when no currency is configured.
const DefaultCode = "CLP"

// MaxAmount is the largest magnitude accepted as an entry amount. It fits
// in int64 minor units for every currency go-money knows.
const MaxAmount = 1e14

// InRange reports whether amount is finite and within MaxAmount.
func InRange(amount float64) bool {
	return !math.IsNaN(amount) && math.Abs(amount) <= MaxAmount
}

// Formatter formats amounts in a single currency.
type Formatter struct {
	code     string
	decimals float64
}

// New returns a Formatter for the ISO 4217 code. Unknown codes are an error.
func New(code string) (Formatter, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}

	c := money.GetCurrency(code)
	if c == nil {
		return Formatter{}, fmt.Errorf("unknown currency code: %q", code)
	}

	return Formatter{code: c.Code, decimals: math.Pow10(c.Fraction)}, nil
}

// Default returns the Formatter for DefaultCode.
func Default() Formatter {
	f, _ := New(DefaultCode)
	return f
}

// Code returns the currency code.
func (f Formatter) Code() string {
	return f.code
}

// Money converts amount into whole units of the currency. It returns false
// when the minor-unit value does not fit in an int64.
func (f Formatter) Money(amount float64) (*money.Money, bool) {
	minor := math.Round(amount) * f.decimals
	if math.IsNaN(minor) || minor >= math.MaxInt64 || minor < math.MinInt64 {
		return nil, false
	}

	return money.New(int64(minor), f.code), true
}

// Format renders amount, e.g. 1234.6 in CLP as "$1.235".
// Totals too large for go-money are printed as the code and whole units.
func (f Formatter) Format(amount float64) string {
	m, ok := f.Money(amount)
	if !ok {
		return f.code + " " + strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	}

	return m.Display()
}
