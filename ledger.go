package cashbook

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/etnz/cashbook/date"
)

// Ledger represents the list of entries and the id counter.
//
// In a Ledger entries are always ordered by creation, most recent first.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	entries []Entry
	nextID  int
	now     func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make([]Entry, 0),
		nextID:  1,
		now:     time.Now,
	}
}

// NextID returns the id the next created entry will receive.
func (l *Ledger) NextID() int { return l.nextID }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Create records a new entry at the front of the ledger and returns it.
//
// The entry receives the next id; CreatedAt is set to the current time, Date
// to the current day unless f.Date is set, and an empty category defaults to
// DefaultCategory.
func (l *Ledger) Create(f Fields) (Entry, error) {
	now := l.now()
	e := Entry{
		ID:          l.nextID,
		Description: strings.TrimSpace(f.Description),
		Amount:      f.Amount,
		Type:        f.Type,
		Category:    strings.TrimSpace(f.Category),
		Date:        f.Date,
		CreatedAt:   now,
	}
	if e.Category == "" {
		e.Category = DefaultCategory
	}
	if e.Date.IsZero() {
		e.Date = date.Of(now)
	}
	if err := e.validate(); err != nil {
		return Entry{}, err
	}
	l.entries = slices.Insert(l.entries, 0, e)
	l.nextID++
	return e, nil
}

// Update merges p into the entry with this id and stamps UpdatedAt.
//
// The id, CreatedAt, Date and position in the ledger are preserved. It returns
// ErrNotFound if there is no such entry, and leaves the entry unchanged if
// the patched entry would be invalid.
func (l *Ledger) Update(id int, p Patch) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	e := p.apply(l.entries[i])
	if err := e.validate(); err != nil {
		return fmt.Errorf("update %d: %w", id, err)
	}
	now := l.now()
	e.UpdatedAt = &now
	l.entries[i] = e
	return nil
}

// Delete removes the entry with this id. The id is never reused.
func (l *Ledger) Delete(id int) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return nil
}

// Entry returns the entry with this id.
func (l *Ledger) Entry(id int) (Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

// All returns a copy of all entries, most recent first.
func (l *Ledger) All() []Entry { return slices.Clone(l.entries) }

// Entries returns an iterator that yields each entry accepted by any of the filters, in ledger order.
func (l *Ledger) Entries(filters ...func(Entry) bool) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			accept := false
			for _, filter := range filters {
				if filter(e) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Reset replaces the whole ledger content with entries, in the given order.
//
// Entries keep their ids. The counter becomes the greatest of nextID and
// the highest id plus one, so that ids are never reissued. On error the
// ledger is left unchanged.
func (l *Ledger) Reset(entries []Entry, nextID int) error {
	seen := make(map[int]struct{}, len(entries))
	maxID := 0
	clean := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Category) == "" {
			e.Category = DefaultCategory
		}
		if err := e.validate(); err != nil {
			return fmt.Errorf("entry %d: %w", e.ID, err)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("entry %d: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = struct{}{}
		maxID = max(maxID, e.ID)
		clean = append(clean, e)
	}
	l.entries = clean
	l.nextID = max(nextID, maxID+1, 1)
	return nil
}

func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.entries, func(e Entry) bool { return e.ID == id })
}

// AcceptAll is a filter that accepts every entry.
func AcceptAll(Entry) bool { return true }

// ByType returns a predicate that accepts entries of type t.
func ByType(t EntryType) func(Entry) bool {
	return func(e Entry) bool { return e.Type == t }
}

// ByCategory returns a predicate that accepts entries in this category, ignoring case.
func ByCategory(category string) func(Entry) bool {
	return func(e Entry) bool { return strings.EqualFold(e.Category, category) }
}

// InRange returns a predicate that accepts entries dated within r.
func InRange(r date.Range) func(Entry) bool {
	return func(e Entry) bool { return r.Contains(e.Date) }
}
