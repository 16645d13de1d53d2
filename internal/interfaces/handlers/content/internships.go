package content

import (
	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreateInternship POST /api/v1/internships — manager/super_admin.
func (h *Handlers) CreateInternship(c *fiber.Ctx) error {
	var req contentsvc.InternshipInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	i, err := h.Service.CreateInternship(c.Context(), req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.SuccessCreated(c, "Internship created", fiber.Map{"internship": i})
}

// ListInternships GET /api/v1/internships — admin view, all statuses.
func (h *Handlers) ListInternships(c *fiber.Ctx) error {
	rows, err := h.Service.ListInternships(c.Context())
	if err != nil {
		return response.Error(c, "Could not load internships", 500)
	}
	return response.Success(c, "Internships loaded", fiber.Map{"internships": rows})
}

// PublicInternships GET /api/v1/internships/published — public feed.
func (h *Handlers) PublicInternships(c *fiber.Ctx) error {
	rows, err := h.Service.PublishedInternships(c.Context())
	if err != nil {
		return response.Error(c, "Could not load internships", 500)
	}
	return response.Success(c, "Internships loaded", fiber.Map{"internships": rows})
}

// UpdateInternship PUT /api/v1/internships/:id.
func (h *Handlers) UpdateInternship(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid internship ID", 400)
	}
	var req contentsvc.InternshipInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	i, err := h.Service.UpdateInternship(c.Context(), id, req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Internship updated", fiber.Map{"internship": i})
}

// PublishInternship PATCH /api/v1/internships/:id/publish.
func (h *Handlers) PublishInternship(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid internship ID", 400)
	}
	if err := h.Service.PublishInternship(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Internship published", nil)
}

// UnpublishInternship PATCH /api/v1/internships/:id/unpublish.
func (h *Handlers) UnpublishInternship(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid internship ID", 400)
	}
	if err := h.Service.UnpublishInternship(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Internship unpublished", nil)
}

// DeleteInternship DELETE /api/v1/internships/:id.
func (h *Handlers) DeleteInternship(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid internship ID", 400)
	}
	if err := h.Service.DeleteInternship(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Internship deleted", nil)
}
