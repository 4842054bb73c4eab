package game

// Roster is an ordered collection with set-like membership. Entries are
// identified by the key function given at construction; adding an entry whose
// key is already present fails. Insertion order is preserved across removals.
//
// A roster is owned by a single gameplay entity and is not safe for
// concurrent use.
type Roster[T any] struct {
	key      func(T) string
	capacity int
	entries  []T
}

// NewRoster returns an unbounded roster keyed by the given function.
func NewRoster[T any](key func(T) string) *Roster[T] {
	return &Roster[T]{key: key}
}

// NewBoundedRoster returns a roster that rejects additions beyond capacity.
func NewBoundedRoster[T any](key func(T) string, capacity int) *Roster[T] {
	return &Roster[T]{key: key, capacity: capacity}
}

// Add appends item. It reports false when the roster is at capacity or an
// entry with the same key is already present.
func (r *Roster[T]) Add(item T) bool {
	if r.capacity > 0 && len(r.entries) >= r.capacity {
		return false
	}
	if r.indexOf(r.key(item)) >= 0 {
		return false
	}
	r.entries = append(r.entries, item)
	return true
}

// Remove deletes the entry sharing item's key. It reports false when no such
// entry is present.
func (r *Roster[T]) Remove(item T) bool {
	return r.removeAt(r.indexOf(r.key(item)))
}

// RemoveByKey deletes and returns the entry with the given key.
func (r *Roster[T]) RemoveByKey(key string) (T, bool) {
	var zero T
	i := r.indexOf(key)
	if i < 0 {
		return zero, false
	}
	item := r.entries[i]
	r.removeAt(i)
	return item, true
}

func (r *Roster[T]) removeAt(i int) bool {
	if i < 0 || i >= len(r.entries) {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

func (r *Roster[T]) indexOf(key string) int {
	for i, entry := range r.entries {
		if r.key(entry) == key {
			return i
		}
	}
	return -1
}

func (r *Roster[T]) Contains(key string) bool {
	return r.indexOf(key) >= 0
}

// Get returns the entry with the given key.
func (r *Roster[T]) Get(key string) (T, bool) {
	var zero T
	i := r.indexOf(key)
	if i < 0 {
		return zero, false
	}
	return r.entries[i], true
}

func (r *Roster[T]) Len() int {
	return len(r.entries)
}

// Capacity returns the maximum size, or zero for an unbounded roster.
func (r *Roster[T]) Capacity() int {
	return r.capacity
}

// Items returns the entries in insertion order. The slice is a copy; mutating
// it does not affect the roster.
func (r *Roster[T]) Items() []T {
	return append([]T(nil), r.entries...)
}

// First returns the oldest entry.
func (r *Roster[T]) First() (T, bool) {
	var zero T
	if len(r.entries) == 0 {
		return zero, false
	}
	return r.entries[0], true
}
