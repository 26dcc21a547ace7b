package handlers

import (
	"lapak/internal/notify"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler exposes the transient feedback message.
type NotificationHandler struct {
	notifier *notify.Notifier
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
	}
}

// RegisterRoutes registers the notification routes.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notifications := router.Group("/notifications")
	notifications.Get("/", h.HandleCurrent)
	notifications.Delete("/", h.HandleDismiss)
}

// HandleCurrent returns the message currently shown, if any.
func (h *NotificationHandler) HandleCurrent(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notification": h.notifier.Current(),
	})
}

// HandleDismiss clears the current message before its auto-dismiss fires.
func (h *NotificationHandler) HandleDismiss(c *fiber.Ctx) error {
	h.notifier.Dismiss()
	return c.JSON(fiber.Map{
		"message": "Notification dismissed",
	})
}
