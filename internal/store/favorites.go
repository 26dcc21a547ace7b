package store

import (
	"sync"

	"lapak/internal/models"
)

// Favorites is the set of liked products, keyed by product id. A product id
// appears at most once.
type Favorites struct {
	mu        sync.Mutex
	items     []models.FavoriteItem
	listeners map[int]func()
	nextSub   int
}

// NewFavorites creates an empty favorites set.
func NewFavorites() *Favorites {
	return &Favorites{
		listeners: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every mutation and returns a function
// that removes the subscription.
func (f *Favorites) Subscribe(fn func()) func() {
	f.mu.Lock()
	id := f.nextSub
	f.nextSub++
	f.listeners[id] = fn
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		delete(f.listeners, id)
		f.mu.Unlock()
	}
}

func (f *Favorites) notify() {
	f.mu.Lock()
	fns := make([]func(), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (f *Favorites) indexOf(productID string) int {
	for i := range f.items {
		if f.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Toggle flips membership: a product already in the set is removed, otherwise
// it is added with qty 1. Two calls with the same product are a no-op overall.
func (f *Favorites) Toggle(product models.Product) {
	f.mu.Lock()
	if i := f.indexOf(product.ID); i >= 0 {
		f.items = append(f.items[:i], f.items[i+1:]...)
	} else {
		f.items = append(f.items, models.FavoriteItem{Product: product, Qty: 1})
	}
	f.mu.Unlock()
	f.notify()
}

// Remove drops the product from the set unconditionally.
func (f *Favorites) Remove(product models.Product) {
	f.mu.Lock()
	if i := f.indexOf(product.ID); i >= 0 {
		f.items = append(f.items[:i], f.items[i+1:]...)
	}
	f.mu.Unlock()
	f.notify()
}

// Items returns a copy of the favorite entries.
func (f *Favorites) Items() []models.FavoriteItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]models.FavoriteItem, len(f.items))
	copy(items, f.items)
	return items
}

// Contains reports whether the product id is in the set.
func (f *Favorites) Contains(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexOf(productID) >= 0
}

// TotalItems returns the sum of qty across entries. Qty is always 1, so this
// equals the number of entries.
func (f *Favorites) TotalItems() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for i := range f.items {
		total += f.items[i].Qty
	}
	return total
}
