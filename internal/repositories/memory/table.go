package memory

import (
	"fmt"
	"sync"

	"github.com/chrisdamba/foodadmin/internal/repositories"
)

// table keeps rows in insertion order so listings are deterministic.
type table[T any] struct {
	mu   sync.RWMutex
	ids  []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("%w: %s", repositories.ErrDuplicate, id)
	}
	t.ids = append(t.ids, id)
	t.rows[id] = row
	return nil
}

func (t *table[T]) get(id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return row, fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	return row, nil
}

func (t *table[T]) update(id string, fn func(*T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	if err := fn(&row); err != nil {
		return err
	}
	t.rows[id] = row
	return nil
}

func (t *table[T]) remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%w: %s", repositories.ErrNotFound, id)
	}
	delete(t.rows, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
