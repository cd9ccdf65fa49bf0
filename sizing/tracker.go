// Package sizing tracks card widths and derives the grid column width.
package sizing

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrInvalidWidth = errors.New("invalid width")
	ErrUnknownKey   = errors.New("unknown key")
	ErrDuplicateKey = errors.New("key already recorded")
)

// Tracker maintains the multiset of intrinsic widths, one entry per key,
// and the column width derived from it: max(minimum, max(entries)).
// Thread-safe; every public method runs under a single lock.
type Tracker[K comparable] struct {
	mu      sync.Mutex
	entries map[K]int
	column  int
	min     int
}

// NewTracker creates a tracker with a fixed minimum column width.
func NewTracker[K comparable](min int) (*Tracker[K], error) {
	if min < 0 {
		return nil, errors.Wrapf(ErrInvalidWidth, "minimum %d", min)
	}
	return &Tracker[K]{
		entries: make(map[K]int),
		column:  min,
		min:     min,
	}, nil
}

// Record adds the measured width for key.
// Returns the column width after the call and whether it grew.
func (t *Tracker[K]) Record(key K, width int) (int, bool, error) {
	if width < 0 {
		return 0, false, errors.Wrapf(ErrInvalidWidth, "width %d", width)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[key]; exists {
		return t.column, false, errors.Wrapf(ErrDuplicateKey, "%v", key)
	}
	t.entries[key] = width

	if width > t.column {
		t.column = width
		return t.column, true, nil
	}
	return t.column, false, nil
}

// Remove deletes the entry for key.
// Returns the column width after the call and whether it shrank.
func (t *Tracker[K]) Remove(key K) (int, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed, ok := t.entries[key]
	if !ok {
		return t.column, false, errors.Wrapf(ErrUnknownKey, "%v", key)
	}
	delete(t.entries, key)

	// Only the widest entry can hold the column open, and only above the floor.
	if removed != t.column || t.column <= t.min {
		return t.column, false, nil
	}

	prev := t.column
	t.column = t.maxLocked()
	return t.column, t.column != prev, nil
}

// ColumnWidth returns the current column width.
func (t *Tracker[K]) ColumnWidth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.column
}

// Min returns the configured minimum column width.
func (t *Tracker[K]) Min() int {
	return t.min
}

// Len returns the number of recorded entries.
func (t *Tracker[K]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Width returns the recorded width for key.
func (t *Tracker[K]) Width(key K) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.entries[key]
	return w, ok
}

// Recompute derives the column width from scratch over all entries.
// It does not modify the tracker; it must always equal ColumnWidth.
func (t *Tracker[K]) Recompute() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.maxLocked()
}

// maxLocked scans all entries. Caller must hold the lock.
func (t *Tracker[K]) maxLocked() int {
	widest := t.min
	for _, w := range t.entries {
		if w > widest {
			widest = w
		}
	}
	return widest
}
