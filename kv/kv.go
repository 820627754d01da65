// Package kv provides key-value byte stores to persist a cashbook snapshot.
//
// All stores implement the cashbook.Store interface:
//
//	Get(ctx, key) (value []byte, ok bool, err error)
//	Set(ctx, key, value) error
package kv

import (
	"context"
	"sync"
)

// Memory is a store kept in memory. Its zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemory returns an empty memory store.
func NewMemory() *Memory { return &Memory{values: make(map[string][]byte)} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	// return a copy so callers can't modify the stored value.
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}
