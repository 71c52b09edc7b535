// Package roster contains the in-memory relational person store: the
// identity-unique collections, the sequence allocators, and the store
// aggregate that enforces assignment, cascade, rebind, and pin invariants.
package roster

// Entity is the constraint for list elements: a domain sameness relation
// over values of the same category. Same compares identity fields only
// (name + phone), not full equality.
type Entity[T any] interface {
	Same(T) bool
}

// List is an ordered collection that rejects entries that are the same
// entity as an existing one. Insertion order is preserved; no implicit
// sorting is applied.
type List[T Entity[T]] struct {
	items []T
}

// NewList creates a list seeded with the given items. The caller is
// responsible for the seed being free of duplicates (bulk load paths
// validate before seeding).
func NewList[T Entity[T]](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// Contains reports whether an entry the same as e is present.
func (l *List[T]) Contains(e T) bool {
	return l.indexOf(e) >= 0
}

// Add appends e, or returns ErrDuplicateEntity if an entry the same as e
// already exists. The list is unchanged on error.
func (l *List[T]) Add(e T) error {
	if l.Contains(e) {
		return ErrDuplicateEntity
	}
	l.items = append(l.items, e)
	return nil
}

// Replace swaps the stored entry matching target for replacement, keeping
// its position. Returns ErrEntityNotFound if target is absent, and
// ErrDuplicateEntity if replacement is the same entity as a different
// existing entry.
func (l *List[T]) Replace(target, replacement T) error {
	i := l.indexOf(target)
	if i < 0 {
		return ErrEntityNotFound
	}
	if j := l.indexOf(replacement); j >= 0 && j != i {
		return ErrDuplicateEntity
	}
	l.items[i] = replacement
	return nil
}

// Remove deletes the stored entry matching target, or returns
// ErrEntityNotFound if absent.
func (l *List[T]) Remove(target T) error {
	i := l.indexOf(target)
	if i < 0 {
		return ErrEntityNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Items returns a copy of the entries in insertion order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.items)
}

// set overwrites the entry at index i. Used by the store for rebind
// passes where the replacement is by construction the same entity.
func (l *List[T]) set(i int, e T) {
	l.items[i] = e
}

// at returns the entry at index i.
func (l *List[T]) at(i int) T {
	return l.items[i]
}

func (l *List[T]) indexOf(target T) int {
	for i, item := range l.items {
		if item.Same(target) {
			return i
		}
	}
	return -1
}
