package cashbook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/cashbook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCategory is the category of entries recorded without one.
const DefaultCategory = "General"

// EntryType tells whether an entry brings money in or takes it out.
type EntryType int

const (
	// Income is money received.
	Income EntryType = iota + 1
	// Expense is money spent.
	Expense
)

func (t EntryType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// Valid reports whether t is Income or Expense.
func (t EntryType) Valid() bool { return t == Income || t == Expense }

// ParseEntryType parses "income" or "expense".
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown entry type: %q", s)
	}
}

func (t EntryType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal entry type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *EntryType) UnmarshalText(text []byte) error {
	v, err := ParseEntryType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Entry is one income or expense transaction.
type Entry struct {
	ID          int
	Description string
	Amount      decimal.Decimal
	Type        EntryType
	Category    string
	Date        date.Date  // day of creation, never changed by an edit
	CreatedAt   time.Time  // set once by Ledger.Create
	UpdatedAt   *time.Time // nil until the first edit
}

// validate checks the entry invariants that do not depend on the rest of the ledger.
func (e Entry) validate() error {
	switch {
	case e.ID <= 0:
		return fmt.Errorf("%w: id %d is not positive", ErrInvalidEntry, e.ID)
	case strings.TrimSpace(e.Description) == "":
		return fmt.Errorf("%w: empty description", ErrInvalidEntry)
	case !e.Amount.IsPositive():
		return fmt.Errorf("%w: amount %s is not positive", ErrInvalidEntry, e.Amount)
	case !e.Type.Valid():
		return fmt.Errorf("%w: unknown type", ErrInvalidEntry)
	}
	return nil
}

// Signed returns the amount as income (positive) or expense (negative).
func (e Entry) Signed() decimal.Decimal {
	if e.Type == Expense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// MarshalJSON writes the entry fields in a fixed order.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	w.Append("type", e.Type)
	w.Append("category", e.Category)
	w.Optional("date", e.Date)
	w.Optional("createdAt", e.CreatedAt)
	if e.UpdatedAt != nil {
		w.Append("updatedAt", *e.UpdatedAt)
	}
	return w.MarshalJSON()
}

func (e *Entry) UnmarshalJSON(b []byte) error {
	// jentry is the object read from the snapshot, using json tags.
	var jentry struct {
		ID          int             `json:"id"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Type        EntryType       `json:"type"`
		Category    string          `json:"category"`
		Date        date.Date       `json:"date"`
		CreatedAt   time.Time       `json:"createdAt"`
		UpdatedAt   *time.Time      `json:"updatedAt"`
	}
	if err := json.Unmarshal(b, &jentry); err != nil {
		return err
	}
	*e = Entry(jentry)
	return nil
}

// Fields are the user supplied values of a new entry.
type Fields struct {
	Description string
	Amount      decimal.Decimal
	Type        EntryType
	Category    string
	// Date is the entry's day. Zero means the day of creation.
	Date date.Date
}

// Patch returns a Patch that overwrites every editable field with f's values.
// f.Date is ignored: dates are not editable.
func (f Fields) Patch() Patch {
	return Patch{
		Description: &f.Description,
		Amount:      &f.Amount,
		Type:        &f.Type,
		Category:    &f.Category,
	}
}

// Patch is a partial update of an entry. Nil fields are left untouched.
type Patch struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *EntryType
	Category    *string
}

// apply returns a copy of e with the patch merged in.
func (p Patch) apply(e Entry) Entry {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Category != nil {
		e.Category = *p.Category
		if strings.TrimSpace(e.Category) == "" {
			e.Category = DefaultCategory
		}
	}
	return e
}
