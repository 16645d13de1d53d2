package content

import (
	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreateAnnouncement POST /api/v1/announcements — editor/super_admin.
func (h *Handlers) CreateAnnouncement(c *fiber.Ctx) error {
	var req contentsvc.AnnouncementInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	a, err := h.Service.CreateAnnouncement(c.Context(), req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.SuccessCreated(c, "Announcement created", fiber.Map{"announcement": a})
}

// ListAnnouncements GET /api/v1/announcements — admin view, all statuses.
func (h *Handlers) ListAnnouncements(c *fiber.Ctx) error {
	rows, err := h.Service.ListAnnouncements(c.Context())
	if err != nil {
		return response.Error(c, "Could not load announcements", 500)
	}
	return response.Success(c, "Announcements loaded", fiber.Map{"announcements": rows})
}

// PublicAnnouncements GET /api/v1/announcements/published — public feed,
// optional ?visibility= filter.
func (h *Handlers) PublicAnnouncements(c *fiber.Ctx) error {
	rows, err := h.Service.PublishedAnnouncements(c.Context(), c.Query("visibility"))
	if err != nil {
		return response.Error(c, "Could not load announcements", 500)
	}
	return response.Success(c, "Announcements loaded", fiber.Map{"announcements": rows})
}

// UpdateAnnouncement PUT /api/v1/announcements/:id.
func (h *Handlers) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid announcement ID", 400)
	}
	var req contentsvc.AnnouncementInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	a, err := h.Service.UpdateAnnouncement(c.Context(), id, req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Announcement updated", fiber.Map{"announcement": a})
}

// PublishAnnouncement PATCH /api/v1/announcements/:id/publish.
func (h *Handlers) PublishAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid announcement ID", 400)
	}
	if err := h.Service.PublishAnnouncement(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Announcement published", nil)
}

// UnpublishAnnouncement PATCH /api/v1/announcements/:id/unpublish.
func (h *Handlers) UnpublishAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid announcement ID", 400)
	}
	if err := h.Service.UnpublishAnnouncement(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Announcement unpublished", nil)
}

// DeleteAnnouncement DELETE /api/v1/announcements/:id.
func (h *Handlers) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid announcement ID", 400)
	}
	if err := h.Service.DeleteAnnouncement(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Announcement deleted", nil)
}
