package handlers

import (
	"log"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles HTTP requests for admin accounts.
type AdminHandler struct {
	service *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service: service,
	}
}

// RegisterRoutes registers the admin-account routes.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admins := router.Group("/admins")
	admins.Get("/", h.HandleList)
	admins.Post("/", h.HandleCreate)
	admins.Put("/:id", h.HandleUpdate)
	admins.Delete("/:id", h.HandleDelete)
}

// HandleList returns the cached admin list, filtered by the optional q
// parameter (local substring match over name and email).
func (h *AdminHandler) HandleList(c *fiber.Ctx) error {
	admins := h.service.List(c.Query("q"))
	return c.JSON(fiber.Map{
		"admins": admins,
		"total":  len(admins),
	})
}

// HandleCreate creates a new admin, provisioning its auth identity first.
func (h *AdminHandler) HandleCreate(c *fiber.Ctx) error {
	var input services.AdminInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing admin body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	admin, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating admin: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin created successfully",
		"admin":   admin,
	})
}

// HandleUpdate updates an existing admin.
func (h *AdminHandler) HandleUpdate(c *fiber.Ctx) error {
	var input services.AdminInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing admin body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	admin, err := h.service.Update(c.Params("id"), input)
	if err != nil {
		log.Printf("Error updating admin %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Admin updated successfully",
		"admin":   admin,
	})
}

// HandleDelete deletes an admin and best-effort removes its auth identity.
func (h *AdminHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		log.Printf("Error deleting admin %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Admin deleted successfully",
	})
}
