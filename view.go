package cashbook

import (
	"fmt"

	"github.com/etnz/cashbook/date"
)

// EmptyState tells why a list of rows is empty.
type EmptyState int

const (
	// EmptyNone means there are rows to display.
	EmptyNone EmptyState = iota
	// EmptyLedger means the ledger has no entries at all.
	EmptyLedger
	// EmptyFilter means entries exist but none matches the filter.
	EmptyFilter
)

// Row is the display form of one entry.
type Row struct {
	ID          int
	Description string
	Category    string
	Date        date.Date
	Type        EntryType
	Amount      Money
	Signed      string // currency formatted, "+" for income, "-" for expense
	Class       string // "income" or "expense"
}

// ViewModel is everything a presentation layer needs to display the ledger.
type ViewModel struct {
	Summary   Summary
	Negative  bool
	Filter    FilterMode
	Rows      []Row
	Empty     EmptyState
	Mode      Mode
	EditingID int // valid when Mode is Editing
	Form      Form
}

// NewView computes the summary of all entries and the rows matching filter.
func NewView(entries []Entry, filter FilterMode, currency string) ViewModel {
	summary := Summarize(entries, currency)
	v := ViewModel{
		Summary:  summary,
		Negative: summary.Negative(),
		Filter:   filter,
	}
	for _, e := range Filter(entries, filter) {
		amount := M(e.Amount, currency)
		v.Rows = append(v.Rows, Row{
			ID:          e.ID,
			Description: e.Description,
			Category:    e.Category,
			Date:        e.Date,
			Type:        e.Type,
			Amount:      amount,
			Signed:      M(e.Signed(), currency).SignedString(),
			Class:       e.Type.String(),
		})
	}
	switch {
	case len(entries) == 0:
		v.Empty = EmptyLedger
	case len(v.Rows) == 0:
		v.Empty = EmptyFilter
	}
	return v
}

// EmptyMessage returns a title and a hint describing the empty state, or
// empty strings if there are rows.
func (v ViewModel) EmptyMessage() (title, hint string) {
	switch v.Empty {
	case EmptyLedger:
		return "No transactions found", "Start by adding your first income or expense entry!"
	case EmptyFilter:
		return fmt.Sprintf("No %s found", v.Filter), fmt.Sprintf("No %s entries to display.", v.Filter)
	default:
		return "", ""
	}
}
