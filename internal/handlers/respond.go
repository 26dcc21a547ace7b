package handlers

import (
	"errors"
	"strings"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto the JSON shapes the screens expect:
// field-scoped validation errors keep the form open with inline messages,
// everything else is a submit-level error.
func respondError(c *fiber.Ctx, err error) error {
	var fieldErrs services.FieldErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrs,
		})
	}

	switch {
	case errors.Is(err, services.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "A submission is already in flight",
		})
	case errors.Is(err, services.ErrCategoryInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Category cannot be deleted because it is still in use by products",
		})
	case errors.Is(err, services.ErrConfirmRequired):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "This will remove the item from your cart. Repeat the request with confirm=true to continue",
		})
	case errors.Is(err, services.ErrOutOfStock),
		errors.Is(err, services.ErrFullyInCart),
		errors.Is(err, services.ErrStockLimit):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrNotInCart):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Request failed",
		"error":   err.Error(),
	})
}
