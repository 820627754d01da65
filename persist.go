package cashbook

import (
	"bytes"
	"context"
)

// DefaultKey is the store key the snapshot is saved under.
const DefaultKey = "incomeExpenseData"

// Store is a key-value byte store. Implementations live in package kv.
type Store interface {
	// Get returns the value stored under key. ok is false if there is none.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// Load reads the ledger saved under key.
//
// A missing key yields an empty ledger and no error. If the value cannot be
// read or parsed, Load still returns an empty, usable ledger together with a
// *PersistenceReadError the caller should report to the user.
func Load(ctx context.Context, s Store, key string) (*Ledger, error) {
	data, ok, err := s.Get(ctx, key)
	if err != nil {
		return NewLedger(), &PersistenceReadError{Key: key, Err: err}
	}
	if !ok {
		return NewLedger(), nil
	}
	l, err := DecodeLedger(bytes.NewReader(data))
	if err != nil {
		return NewLedger(), &PersistenceReadError{Key: key, Err: err}
	}
	return l, nil
}

// Save writes the full ledger snapshot under key, overwriting the previous one.
// Failures are returned as *PersistenceWriteError.
func Save(ctx context.Context, s Store, key string, l *Ledger) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return &PersistenceWriteError{Key: key, Err: err}
	}
	if err := s.Set(ctx, key, buf.Bytes()); err != nil {
		return &PersistenceWriteError{Key: key, Err: err}
	}
	return nil
}
