package handlers

import (
	"log"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the storefront category routes.
func (h *CategoryHandler) RegisterPublicRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
}

// RegisterAdminRoutes registers the back-office category routes.
func (h *CategoryHandler) RegisterAdminRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Post("/", h.HandleCreate)
	categories.Put("/:id", h.HandleUpdate)
	categories.Delete("/:id", h.HandleDelete)
}

// HandleList returns the cached category list, filtered by the optional q
// parameter (local substring match over name and description).
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories := h.service.List(c.Query("q"))
	return c.JSON(fiber.Map{
		"categories": categories,
		"total":      len(categories),
	})
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}

// HandleUpdate updates an existing category.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.CategoryInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		log.Printf("Error updating category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// HandleDelete deletes a category unless products still reference it.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting category %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
