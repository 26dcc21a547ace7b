package handlers

import (
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/pkg/currency"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles the storefront cart and favorites requests. All
// mutations go through the stock-aware CartService, never the stores directly.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart and favorites routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Post("/items/:id/increment", h.HandleIncrement)
	cart.Post("/items/:id/decrement", h.HandleDecrement)
	cart.Delete("/items/:id", h.HandleClearItem)
	cart.Post("/checkout", h.HandleCheckout)

	favorites := router.Group("/favorites")
	favorites.Get("/", h.HandleGetFavorites)
	favorites.Post("/toggle", h.HandleToggleFavorite)
	favorites.Delete("/:id", h.HandleRemoveFavorite)
}

type cartItemResponse struct {
	models.CartItem
	FormattedTotal string `json:"formatted_total"`
	AtStockLimit   bool   `json:"at_stock_limit"`
}

// HandleGetCart returns the line items and the derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart := h.service.Cart()

	items := cart.Items()
	responses := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, cartItemResponse{
			CartItem:       item,
			FormattedTotal: currency.FormatIDR(item.TotalPrice),
			AtStockLimit:   item.Quantity >= item.Product.Stock,
		})
	}

	return c.JSON(fiber.Map{
		"items":           responses,
		"total_items":     cart.TotalItems(),
		"total_quantity":  cart.TotalQuantity(),
		"total_price":     cart.TotalPrice(),
		"formatted_total": currency.FormatIDR(cart.TotalPrice()),
	})
}

// AddItemRequest is the detail-view add: a product and a batch quantity.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem adds a batch quantity from the detail view. The response
// reports the quantity actually added, which may have been clamped to stock.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	added, err := h.service.AddFromDetail(req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Added to cart",
		"requested": req.Quantity,
		"added":     added,
		"clamped":   added < req.Quantity,
		"quantity":  h.service.Cart().QuantityOf(req.ProductID),
	})
}

// HandleIncrement adds one unit of an item already known to the storefront.
func (h *CartHandler) HandleIncrement(c *fiber.Ctx) error {
	if err := h.service.IncrementItem(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Quantity increased",
		"quantity": h.service.Cart().QuantityOf(c.Params("id")),
	})
}

// HandleDecrement removes one unit. Decrementing a quantity-1 line removes it
// and requires confirm=true.
func (h *CartHandler) HandleDecrement(c *fiber.Ctx) error {
	removed, err := h.service.DecrementItem(c.Params("id"), c.QueryBool("confirm"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Quantity decreased",
		"removed":  removed,
		"quantity": h.service.Cart().QuantityOf(c.Params("id")),
	})
}

// HandleClearItem removes the whole line, requiring confirm=true.
func (h *CartHandler) HandleClearItem(c *fiber.Ctx) error {
	if err := h.service.ClearItem(c.Params("id"), c.QueryBool("confirm")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleCheckout is a stub; order processing is out of scope.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"message": "Checkout functionality coming soon!",
	})
}

// HandleGetFavorites returns the favorite entries and their count.
func (h *CartHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites := h.service.Favorites()
	return c.JSON(fiber.Map{
		"items": favorites.Items(),
		"total": favorites.TotalItems(),
	})
}

// ToggleFavoriteRequest names the product whose membership is flipped.
type ToggleFavoriteRequest struct {
	ProductID string `json:"product_id"`
}

// HandleToggleFavorite flips a product's favorite membership.
func (h *CartHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	var req ToggleFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing toggle-favorite body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.ToggleFavorite(req.ProductID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Favorite toggled",
		"favorited": h.service.Favorites().Contains(req.ProductID),
		"total":     h.service.Favorites().TotalItems(),
	})
}

// HandleRemoveFavorite drops a product from the favorites set.
func (h *CartHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	h.service.RemoveFavorite(c.Params("id"))
	return c.JSON(fiber.Map{
		"message": "Favorite removed",
		"total":   h.service.Favorites().TotalItems(),
	})
}
