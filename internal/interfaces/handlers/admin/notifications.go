package admin

import (
	"errors"

	adminsvc "tmf-backend/internal/application/admin"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListNotifications GET /api/v1/admin/notifications — any authenticated role.
func (h *Handlers) ListNotifications(c *fiber.Ctx) error {
	rows, err := h.Notifications.List(c.Context())
	if err != nil {
		return response.Error(c, "Could not load notifications", 500)
	}
	unread, err := h.Notifications.UnreadCount(c.Context())
	if err != nil {
		return response.Error(c, "Could not load notifications", 500)
	}
	return response.Success(c, "Notifications loaded", fiber.Map{
		"notifications": rows,
		"unread":        unread,
	})
}

// MarkNotificationRead PATCH /api/v1/admin/notifications/:id/read.
func (h *Handlers) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid notification ID", 400)
	}
	if err := h.Notifications.MarkRead(c.Context(), id); err != nil {
		if errors.Is(err, adminsvc.ErrNotificationNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.Error(c, "Something went wrong", 500)
	}
	return response.Success(c, "Notification marked read", nil)
}

// MarkAllNotificationsRead PATCH /api/v1/admin/notifications/read-all.
func (h *Handlers) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := h.Notifications.MarkAllRead(c.Context()); err != nil {
		return response.Error(c, "Something went wrong", 500)
	}
	return response.Success(c, "All notifications marked read", nil)
}
