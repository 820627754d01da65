package cashbook

import (
	"fmt"
	"strings"
)

// FilterMode selects which entries are displayed.
type FilterMode int

const (
	// FilterAll displays every entry.
	FilterAll FilterMode = iota
	// FilterIncome displays income entries only.
	FilterIncome
	// FilterExpense displays expense entries only.
	FilterExpense
)

func (m FilterMode) String() string {
	switch m {
	case FilterAll:
		return "all"
	case FilterIncome:
		return "income"
	case FilterExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseFilterMode parses "all", "income" or "expense". The empty string means "all".
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "income":
		return FilterIncome, nil
	case "expense":
		return FilterExpense, nil
	default:
		return 0, fmt.Errorf("unknown filter: %q", s)
	}
}

// Accept reports whether e is displayed in this mode. An unknown mode accepts nothing.
func (m FilterMode) Accept(e Entry) bool {
	switch m {
	case FilterAll:
		return true
	case FilterIncome:
		return e.Type == Income
	case FilterExpense:
		return e.Type == Expense
	default:
		return false
	}
}

// Filter returns the entries accepted by mode, in ledger order.
// FilterAll returns entries itself.
func Filter(entries []Entry, mode FilterMode) []Entry {
	if mode == FilterAll {
		return entries
	}
	selected := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if mode.Accept(e) {
			selected = append(selected, e)
		}
	}
	return selected
}
