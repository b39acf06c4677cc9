package memory

import (
	"sync"

	"github.com/riskibarqy/football-portal/internal/domain/storage"
)

// table is a mutex guarded row map keyed by id. Unique keys are checked on
// every write; an empty key value is never considered a collision.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[string]T
	id     func(T) string
	unique []func(T) string
}

func newTable[T any](id func(T) string, unique ...func(T) string) *table[T] {
	return &table[T]{
		rows:   make(map[string]T),
		id:     id,
		unique: unique,
	}
}

func (t *table[T]) seed(rows []T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range rows {
		t.rows[t.id(row)] = row
	}
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// filter returns matching rows in unspecified order; a nil match keeps all.
func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, exists := t.rows[id]; exists {
		return storage.ErrDuplicate
	}
	if t.collidesLocked(row, id) {
		return storage.ErrDuplicate
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) update(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, exists := t.rows[id]; !exists {
		return storage.ErrNotFound
	}
	if t.collidesLocked(row, id) {
		return storage.ErrDuplicate
	}
	t.rows[id] = row
	return nil
}

// mutate applies fn to the stored row under the write lock.
func (t *table[T]) mutate(id string, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, exists := t.rows[id]
	if !exists {
		return storage.ErrNotFound
	}
	fn(&row)
	t.rows[id] = row
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.rows[id]; !exists {
		return storage.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) collidesLocked(row T, selfID string) bool {
	for _, key := range t.unique {
		want := key(row)
		if want == "" {
			continue
		}
		for id, other := range t.rows {
			if id != selfID && key(other) == want {
				return true
			}
		}
	}
	return false
}
