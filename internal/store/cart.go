// Package store holds the in-memory client state of the storefront: the cart,
// the favorites set and the cached entity lists the admin screens reconcile
// canonical records into. Stores are plain constructed objects meant to be
// injected; they carry no stock or business policy of their own.
package store

import (
	"sync"

	"lapak/internal/models"
)

// Cart is an ordered ledger of line items. Insertion order is preserved: the
// first-added product stays first until its line is removed. The cart applies
// no stock checks; that policy belongs to the caller (see services.CartService).
type Cart struct {
	mu        sync.Mutex
	items     []models.CartItem
	listeners map[int]func()
	nextSub   int
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		listeners: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every mutation and returns a function
// that removes the subscription.
func (c *Cart) Subscribe(fn func()) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// notify runs outside the lock so listeners may call selectors.
func (c *Cart) notify() {
	c.mu.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddToCart adds one unit of the product: an existing line is incremented by 1
// and one unit price is added to its running total, otherwise a new line with
// quantity 1 is appended.
func (c *Cart) AddToCart(product models.Product) {
	c.mu.Lock()
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity++
		c.items[i].TotalPrice += product.Price
	} else {
		c.items = append(c.items, models.CartItem{
			Product:    product,
			Quantity:   1,
			TotalPrice: product.Price,
		})
	}
	c.mu.Unlock()
	c.notify()
}

// RemoveFromCart removes one unit of the product. A line at quantity 1 is
// removed entirely; a quantity-0 row is never left behind.
func (c *Cart) RemoveFromCart(product models.Product) {
	c.mu.Lock()
	if i := c.indexOf(product.ID); i >= 0 {
		if c.items[i].Quantity > 1 {
			c.items[i].Quantity--
			c.items[i].TotalPrice -= product.Price
		} else {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
	}
	c.mu.Unlock()
	c.notify()
}

// ClearItemFromCart removes the product's line regardless of its quantity.
func (c *Cart) ClearItemFromCart(product models.Product) {
	c.mu.Lock()
	if i := c.indexOf(product.ID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	c.mu.Unlock()
	c.notify()
}

// AddItemWithQuantity adds quantity units in one step with the same
// merge-or-append semantics as AddToCart. Non-positive quantities are ignored.
func (c *Cart) AddItemWithQuantity(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	if i := c.indexOf(product.ID); i >= 0 {
		c.items[i].Quantity += quantity
		c.items[i].TotalPrice += product.Price * float64(quantity)
	} else {
		c.items = append(c.items, models.CartItem{
			Product:    product,
			Quantity:   quantity,
			TotalPrice: product.Price * float64(quantity),
		})
	}
	c.mu.Unlock()
	c.notify()
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// ItemOf returns the line item for the product, if present.
func (c *Cart) ItemOf(productID string) (models.CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		return c.items[i], true
	}
	return models.CartItem{}, false
}

// QuantityOf returns the quantity currently held for the product, 0 when the
// product is not in the cart.
func (c *Cart) QuantityOf(productID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

// TotalItems returns the number of distinct line items.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// TotalQuantity returns the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for i := range c.items {
		total += c.items[i].Quantity
	}
	return total
}

// TotalPrice returns the grand total, derived from the line items on every
// call rather than stored alongside them.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for i := range c.items {
		total += c.items[i].TotalPrice
	}
	return total
}
