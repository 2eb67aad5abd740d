package store

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")
)

// Memory is a keyed in-memory table for a single entity type. Records are
// stored and returned by value, so callers never share mutable state with
// the table; all changes go through Create/Update/Delete.
//
// List iterates in insertion order, which keeps read snapshots stable.
type Memory[R any] struct {
	mu      sync.RWMutex
	records map[string]R
	order   []string
	closed  bool
}

func NewMemory[R any]() *Memory[R] {
	return &Memory[R]{
		records: make(map[string]R),
	}
}

func (m *Memory[R]) Get(key string) (R, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[key]
	return r, ok
}

func (m *Memory[R]) Create(key string, record R) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; ok {
		return ErrExists
	}

	m.records[key] = record
	m.order = append(m.order, key)
	return nil
}

// Update applies patch to the record under key atomically. The patch
// receives a copy and its return value replaces the stored record.
func (m *Memory[R]) Update(key string, patch func(R) R) (R, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.records[key]
	if !ok {
		var zero R
		return zero, ErrNotFound
	}

	r = patch(r)
	m.records[key] = r
	return r, nil
}

func (m *Memory[R]) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return ErrNotFound
	}

	delete(m.records, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns records matching filter in insertion order. A nil filter
// matches everything. offset/limit apply after filtering; limit <= 0 means
// no limit.
func (m *Memory[R]) List(filter func(R) bool, limit, offset int) []R {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]R, 0, len(m.order))
	for _, key := range m.order {
		r := m.records[key]
		if filter != nil && !filter(r) {
			continue
		}
		res = append(res, r)
	}

	if offset > 0 {
		if offset >= len(res) {
			return nil
		}
		res = res[offset:]
	}
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}

	return res
}

func (m *Memory[R]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

// Close drops all records. The table must not be used afterwards.
func (m *Memory[R]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	m.records = nil
	m.order = nil
	return nil
}
