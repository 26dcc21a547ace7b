package store

import (
	"strings"
	"sync"
)

// List caches the canonical records of one entity type as returned by the
// database. CRUD flows reconcile their results into it: create prepends,
// update replaces the matching entry, delete removes it. Search is a local
// case-insensitive substring match over the fields given at construction; it
// never reaches the database.
type List[T any] struct {
	mu     sync.Mutex
	items  []T
	idOf   func(T) string
	fields func(T) []string
}

// NewList creates an empty list. idOf extracts the entity id, fields the
// strings Search matches against.
func NewList[T any](idOf func(T) string, fields func(T) []string) *List[T] {
	return &List[T]{
		idOf:   idOf,
		fields: fields,
	}
}

// Reset replaces the whole cache, e.g. after an initial load.
func (l *List[T]) Reset(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = make([]T, len(items))
	copy(l.items, items)
}

// Prepend puts a freshly created record at the head of the list.
func (l *List[T]) Prepend(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append([]T{item}, l.items...)
}

// Replace swaps the entry whose id matches item's id. Unknown ids are ignored.
func (l *List[T]) Replace(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.idOf(item)
	for i := range l.items {
		if l.idOf(l.items[i]) == id {
			l.items[i] = item
			return
		}
	}
}

// Remove drops the entry with the given id. Unknown ids are ignored.
func (l *List[T]) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		if l.idOf(l.items[i]) == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cached records in list order.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

// Len returns the number of cached records.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Search returns the records whose searchable fields contain term,
// case-insensitively. An empty term returns everything.
func (l *List[T]) Search(term string) []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	if term == "" {
		items := make([]T, len(l.items))
		copy(items, l.items)
		return items
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(l.items))
	for _, item := range l.items {
		for _, field := range l.fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
