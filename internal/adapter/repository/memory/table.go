// Package memory implements the repository interfaces on in-process maps.
// It backs local runs without cloud credentials and the usecase tests.
package memory

import (
	"sync"
)

// table is a mutex-guarded keyed collection that remembers insertion order.
// Rows are copied on the way in and out so callers never share state with
// the store.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]*T
	order []string
	clone func(*T) *T
}

func newTable[T any](clone func(*T) *T) *table[T] {
	if clone == nil {
		clone = func(v *T) *T {
			c := *v
			return &c
		}
	}
	return &table[T]{
		rows:  make(map[string]*T),
		clone: clone,
	}
}

// insert stores v under id unless the id is taken.
func (t *table[T]) insert(id string, v *T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return false
	}
	t.rows[id] = t.clone(v)
	t.order = append(t.order, id)
	return true
}

func (t *table[T]) get(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return t.clone(v), true
}

func (t *table[T]) has(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.rows[id]
	return ok
}

// update applies fn to the stored row atomically.
func (t *table[T]) update(id string, fn func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.rows[id]
	if !ok {
		return false
	}
	fn(v)
	return true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// filter returns copies of the rows accepted by keep, in insertion order.
func (t *table[T]) filter(keep func(*T) bool) []*T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		v := t.rows[id]
		if keep == nil || keep(v) {
			out = append(out, t.clone(v))
		}
	}
	return out
}
