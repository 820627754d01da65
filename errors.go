package cashbook

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets an id that is not in the ledger.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidEntry is returned when an entry breaks an invariant (empty
	// description, non positive amount, unknown type).
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrDuplicateID is returned when two entries share the same id.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrInvalidSnapshot is returned when a saved or imported snapshot cannot be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// ValidationError reports a user input that cannot be turned into an entry.
type ValidationError struct {
	Field  string // "description", "amount" or "type"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceReadError is returned by Load when the stored snapshot cannot be
// read. The ledger returned alongside is empty and usable.
type PersistenceReadError struct {
	Key string
	Err error
}

func (e *PersistenceReadError) Error() string {
	return fmt.Sprintf("could not load saved data %q, starting with an empty ledger: %v", e.Key, e.Err)
}

func (e *PersistenceReadError) Unwrap() error { return e.Err }

// PersistenceWriteError is returned when the snapshot could not be saved. The
// in-memory ledger is unaffected and stays authoritative.
type PersistenceWriteError struct {
	Key string
	Err error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("could not save data %q: %v", e.Key, e.Err)
}

func (e *PersistenceWriteError) Unwrap() error { return e.Err }
