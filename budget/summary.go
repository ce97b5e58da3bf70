package budget

// Summary holds the totals derived from the three collections.
type Summary struct {
	TotalIncome    float64 `json:"total_income"`
	TotalBills     float64 `json:"total_bills"`
	PaidBills      float64 `json:"paid_bills"`
	UnpaidBills    float64 `json:"unpaid_bills"`
	TotalProjected float64 `json:"total_projected"`
	Available      float64 `json:"available"`
}

// Expenses is everything going out: bills plus projected expenses.
func (s Summary) Expenses() float64 {
	return s.TotalBills + s.TotalProjected
}

// CategoryTotal is the projected amount for one category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Amount   float64  `json:"amount"`
}

// Summarize computes the summary for the given collections.
func Summarize(incomes []Income, bills []Bill, projected []ProjectedExpense) Summary {
	totalIncome := TotalIncome(incomes)
	totalBills := TotalBills(bills)
	paidBills := PaidBills(bills)
	totalProjected := TotalProjected(projected)

	return Summary{
		TotalIncome: totalIncome,
		TotalBills:  totalBills,
		PaidBills:   paidBills,
		// derived by subtraction so paid + unpaid always equals the total
		UnpaidBills:    totalBills - paidBills,
		TotalProjected: totalProjected,
		Available:      totalIncome - totalBills - totalProjected,
	}
}

// TotalIncome sums every income amount.
func TotalIncome(incomes []Income) float64 {
	var total float64
	for _, i := range incomes {
		total += i.Amount
	}
	return total
}

// TotalBills sums every bill, paid or not.
func TotalBills(bills []Bill) float64 {
	var total float64
	for _, b := range bills {
		total += b.Amount
	}
	return total
}

// PaidBills sums the bills marked as paid.
func PaidBills(bills []Bill) float64 {
	var total float64
	for _, b := range bills {
		if b.Paid {
			total += b.Amount
		}
	}
	return total
}

// TotalProjected sums every projected expense.
func TotalProjected(projected []ProjectedExpense) float64 {
	var total float64
	for _, p := range projected {
		total += p.Amount
	}
	return total
}

// ProjectedByCategory totals projected expenses per category, in the order
// each category first appears.
func ProjectedByCategory(projected []ProjectedExpense) []CategoryTotal {
	var totals []CategoryTotal
	index := make(map[Category]int)

	for _, p := range projected {
		i, ok := index[p.Category]
		if !ok {
			i = len(totals)
			index[p.Category] = i
			totals = append(totals, CategoryTotal{Category: p.Category})
		}
		totals[i].Amount += p.Amount
	}

	return totals
}
