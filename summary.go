package cashbook

// Summary holds the totals of a list of entries.
type Summary struct {
	Income  Money
	Expense Money
	Balance Money // Income - Expense, may be negative
}

// Summarize computes the totals of entries, expressed in currency.
//
// The result does not depend on the order of entries.
func Summarize(entries []Entry, currency string) Summary {
	income := M(0, currency)
	expense := M(0, currency)
	for _, e := range entries {
		switch e.Type {
		case Income:
			income = income.Add(M(e.Amount, currency))
		case Expense:
			expense = expense.Add(M(e.Amount, currency))
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// Negative reports whether more money went out than came in.
func (s Summary) Negative() bool { return s.Balance.IsNegative() }
