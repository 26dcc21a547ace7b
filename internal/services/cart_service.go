package services

import (
	"errors"
	"fmt"

	"lapak/internal/models"
	"lapak/internal/notify"
	"lapak/internal/repositories"
	"lapak/internal/store"
)

var (
	// ErrStockLimit rejects an increment that would push the held quantity
	// past the product's stock.
	ErrStockLimit = errors.New("maximum stock reached")
	// ErrOutOfStock rejects adding a product whose stock is zero.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrFullyInCart rejects adding a product whose stock is already fully
	// held in the cart.
	ErrFullyInCart = errors.New("product is already fully in cart")
	// ErrConfirmRequired guards the destructive removal paths: decrementing a
	// quantity-1 line and clearing a line both need explicit confirmation.
	ErrConfirmRequired = errors.New("removal requires confirmation")
	// ErrNotInCart is returned for cart operations on a product that has no
	// line item.
	ErrNotInCart = errors.New("product is not in the cart")
)

// CartService is the stock-aware quantity controller in front of the cart and
// favorites stores. The stores themselves are dumb ledgers; every mutation
// that could violate the stock ceiling or destroy a line goes through here.
// Stock is the value known at the last product fetch; concurrent purchases by
// other shoppers are not reconciled client-side.
type CartService struct {
	cart      *store.Cart
	favorites *store.Favorites
	products  repositories.ProductRepository
	notifier  *notify.Notifier
}

// NewCartService creates a new CartService.
func NewCartService(cart *store.Cart, favorites *store.Favorites, products repositories.ProductRepository, notifier *notify.Notifier) *CartService {
	return &CartService{
		cart:      cart,
		favorites: favorites,
		products:  products,
		notifier:  notifier,
	}
}

// Cart exposes the underlying cart store for selectors.
func (s *CartService) Cart() *store.Cart {
	return s.cart
}

// Favorites exposes the underlying favorites store for selectors.
func (s *CartService) Favorites() *store.Favorites {
	return s.favorites
}

// snapshotFor resolves the product and the quantity already held. A product
// already in the cart is answered from its cart snapshot so price and stock
// stay consistent within the line; otherwise the product is fetched.
func (s *CartService) snapshotFor(productID string) (models.Product, int, error) {
	if item, ok := s.cart.ItemOf(productID); ok {
		return item.Product, item.Quantity, nil
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return models.Product{}, 0, err
	}
	return *product, 0, nil
}

// IncrementItem adds one unit, the quantity-stepper plus. The increment is
// blocked once the held quantity has reached the product's stock.
func (s *CartService) IncrementItem(productID string) error {
	product, owned, err := s.snapshotFor(productID)
	if err != nil {
		return err
	}

	if owned >= product.Stock {
		s.notifier.Error(fmt.Sprintf("Cannot add more items. Maximum stock available: %d", product.Stock))
		return ErrStockLimit
	}

	s.cart.AddToCart(product)
	return nil
}

// AddFromDetail adds a batch quantity from the product detail view. The
// requested quantity is clamped to what the stock still allows on top of the
// quantity already held; a reduced request is reported. Returns the quantity
// actually added.
func (s *CartService) AddFromDetail(productID string, requested int) (int, error) {
	if requested < 1 {
		return 0, FieldErrors{"quantity": "quantity must be at least 1"}
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	owned := s.cart.QuantityOf(productID)

	available := product.Stock - owned
	if available <= 0 {
		if product.Stock == 0 {
			s.notifier.Error("Out of stock")
			return 0, ErrOutOfStock
		}
		s.notifier.Error("Already fully in cart")
		return 0, ErrFullyInCart
	}

	effective := requested
	if requested > available {
		effective = available
		s.notifier.Error(fmt.Sprintf("Stock is limited to %d. Added %d item(s) instead of %d", product.Stock, effective, requested))
	}

	s.cart.AddItemWithQuantity(*product, effective)
	return effective, nil
}

// DecrementItem removes one unit, the quantity-stepper minus. Decrementing a
// quantity-1 line removes it, which requires confirmation. Returns whether
// the line was removed.
func (s *CartService) DecrementItem(productID string, confirmed bool) (bool, error) {
	item, ok := s.cart.ItemOf(productID)
	if !ok {
		return false, ErrNotInCart
	}

	if item.Quantity <= 1 {
		if !confirmed {
			return false, ErrConfirmRequired
		}
		s.cart.RemoveFromCart(item.Product)
		return true, nil
	}

	s.cart.RemoveFromCart(item.Product)
	return false, nil
}

// ClearItem removes the whole line regardless of quantity, with confirmation.
func (s *CartService) ClearItem(productID string, confirmed bool) error {
	item, ok := s.cart.ItemOf(productID)
	if !ok {
		return ErrNotInCart
	}
	if !confirmed {
		return ErrConfirmRequired
	}

	s.cart.ClearItemFromCart(item.Product)
	return nil
}

// ToggleFavorite flips the product's membership in the favorites set.
func (s *CartService) ToggleFavorite(productID string) error {
	product, err := s.products.GetByID(productID)
	if err != nil {
		return err
	}
	s.favorites.Toggle(*product)
	return nil
}

// RemoveFavorite drops the product from the favorites set. Removing an absent
// product is a no-op.
func (s *CartService) RemoveFavorite(productID string) {
	for _, item := range s.favorites.Items() {
		if item.Product.ID == productID {
			s.favorites.Remove(item.Product)
			return
		}
	}
}
