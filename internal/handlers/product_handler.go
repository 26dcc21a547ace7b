package handlers

import (
	"log"
	"strconv"

	"lapak/internal/services"
	"lapak/pkg/currency"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog: the public
// storefront reads and the admin back-office writes.
type ProductHandler struct {
	service *services.ProductService
	cart    *services.CartService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, cart *services.CartService) *ProductHandler {
	return &ProductHandler{
		service: service,
		cart:    cart,
	}
}

// RegisterPublicRoutes registers the storefront product routes.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/:id", h.HandleDetail)
}

// RegisterAdminRoutes registers the back-office product routes.
func (h *ProductHandler) RegisterAdminRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList returns the cached product list, filtered by the optional q
// parameter (local substring match over name and category name).
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products := h.service.List(c.Query("q"))
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

// HandleDetail returns a product with the storefront extras: the formatted
// price and how many units the cart already holds.
func (h *ProductHandler) HandleDetail(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		log.Printf("Error getting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	owned := h.cart.Cart().QuantityOf(product.ID)
	return c.JSON(fiber.Map{
		"product":         product,
		"formatted_price": currency.FormatIDR(product.Price),
		"owned_in_cart":   owned,
		"owned_total":     currency.FormatIDR(float64(owned) * product.Price),
	})
}

// parseProductForm reads the product form from either a JSON body or a
// multipart form with an attached image file.
func parseProductForm(c *fiber.Ctx) (services.ProductInput, *services.ImageUpload, error) {
	var input services.ProductInput

	fileHeader, fileErr := c.FormFile("image")
	if fileErr != nil {
		// No multipart image attached; the body is plain JSON or form fields.
		if err := c.BodyParser(&input); err != nil {
			return input, nil, err
		}
		return input, nil, nil
	}

	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	stock, _ := strconv.Atoi(c.FormValue("stock"))
	input = services.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		CategoryID:  c.FormValue("category_id"),
		ImageURL:    c.FormValue("image_url"),
	}

	file, err := fileHeader.Open()
	if err != nil {
		return input, nil, err
	}
	image := &services.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}
	return input, image, nil
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	input, image, err := parseProductForm(c)
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.Create(input, image)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
		"product": product,
	})
}

// HandleUpdate updates an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	input, image, err := parseProductForm(c)
	if err != nil {
		log.Printf("Error parsing product form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.Update(c.Params("id"), input, image)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully",
		"product": product,
	})
}

// HandleDelete deletes a product.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
