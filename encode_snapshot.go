package cashbook

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeLedger writes the ledger snapshot {"entries":[...],"nextId":N} to w,
// followed by a newline. Entries keep their ledger order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	var o jsonObjectWriter
	o.Append("entries", l.entries)
	o.Append("nextId", l.nextID)
	data, err := o.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger snapshot from r.
//
// A missing entry list is read as empty, and a missing or stale counter is
// raised above the highest id. Snapshots with invalid or duplicate entries
// are rejected.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var snapshot struct {
		Entries []Entry `json:"entries"`
		NextID  int     `json:"nextId"`
	}
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	l := NewLedger()
	if err := l.Reset(snapshot.Entries, snapshot.NextID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return l, nil
}
