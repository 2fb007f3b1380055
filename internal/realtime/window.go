// Package realtime mirrors Firestore query snapshots into local view state.
// A Window holds the client-side copy; a Source feeds it change events
// decoded from snapshot listeners.
package realtime

import "sync"

type Kind int

const (
	Added Kind = iota + 1
	Modified
	Removed
)

// Keyed is anything identified by a stable document id.
type Keyed interface {
	Key() string
}

// Window is an ordered, id-keyed sequence (newest first) merged from an
// initial REST page plus listener change events. Merge rules: a duplicate
// Added is a no-op, Modified replaces in place, Removed for an absent id is
// a no-op. Events are applied in delivery order; the window never reorders.
type Window[T Keyed] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

func NewWindow[T Keyed]() *Window[T] {
	return &Window[T]{index: make(map[string]int)}
}

// Reset replaces the whole window with the REST-fetched baseline.
func (w *Window[T]) Reset(items []T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = make([]T, len(items))
	copy(w.items, items)
	w.reindex()
}

// Apply merges one change event.
func (w *Window[T]) Apply(kind Kind, item T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	key := item.Key()
	pos, exists := w.index[key]

	switch kind {
	case Added:
		if exists {
			return
		}
		w.items = append([]T{item}, w.items...)
		w.reindex()
	case Modified:
		if !exists {
			return
		}
		w.items[pos] = item
	case Removed:
		if !exists {
			return
		}
		w.items = append(w.items[:pos], w.items[pos+1:]...)
		w.reindex()
	}
}

// Items returns a copy of the current sequence, newest first.
func (w *Window[T]) Items() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]T, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Window[T]) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

func (w *Window[T]) reindex() {
	w.index = make(map[string]int, len(w.items))
	for i, item := range w.items {
		w.index[item.Key()] = i
	}
}
