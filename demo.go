package cashbook

import (
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

// DemoNextID is the counter value that goes with DemoEntries.
const DemoNextID = 5

// DemoEntries returns the demonstration set, stamped with day on and time at.
// Ids are explicit, from 1 to 4.
func DemoEntries(on date.Date, at time.Time) []Entry {
	demo := func(id int, description string, amount int64, t EntryType, category string) Entry {
		return Entry{
			ID:          id,
			Description: description,
			Amount:      decimal.NewFromInt(amount),
			Type:        t,
			Category:    category,
			Date:        on,
			CreatedAt:   at,
		}
	}
	return []Entry{
		demo(1, "Salary", 50000, Income, "Job"),
		demo(2, "Groceries", 2500, Expense, "Food"),
		demo(3, "Freelance Work", 15000, Income, "Business"),
		demo(4, "Electricity Bill", 1200, Expense, "Utilities"),
	}
}
