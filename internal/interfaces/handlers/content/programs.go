package content

import (
	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreateProgram POST /api/v1/programs — manager/super_admin.
func (h *Handlers) CreateProgram(c *fiber.Ctx) error {
	var req contentsvc.ProgramInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	p, err := h.Service.CreateProgram(c.Context(), req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.SuccessCreated(c, "Program created", fiber.Map{"program": p})
}

// ListPrograms GET /api/v1/programs — admin view, all statuses.
func (h *Handlers) ListPrograms(c *fiber.Ctx) error {
	rows, err := h.Service.ListPrograms(c.Context())
	if err != nil {
		return response.Error(c, "Could not load programs", 500)
	}
	return response.Success(c, "Programs loaded", fiber.Map{"programs": rows})
}

// PublicPrograms GET /api/v1/programs/published — public feed.
func (h *Handlers) PublicPrograms(c *fiber.Ctx) error {
	rows, err := h.Service.PublishedPrograms(c.Context())
	if err != nil {
		return response.Error(c, "Could not load programs", 500)
	}
	return response.Success(c, "Programs loaded", fiber.Map{"programs": rows})
}

// UpdateProgram PUT /api/v1/programs/:id.
func (h *Handlers) UpdateProgram(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid program ID", 400)
	}
	var req contentsvc.ProgramInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	p, err := h.Service.UpdateProgram(c.Context(), id, req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Program updated", fiber.Map{"program": p})
}

// PublishProgram PATCH /api/v1/programs/:id/publish.
func (h *Handlers) PublishProgram(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid program ID", 400)
	}
	if err := h.Service.PublishProgram(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Program published", nil)
}

// UnpublishProgram PATCH /api/v1/programs/:id/unpublish.
func (h *Handlers) UnpublishProgram(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid program ID", 400)
	}
	if err := h.Service.UnpublishProgram(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Program unpublished", nil)
}

// DeleteProgram DELETE /api/v1/programs/:id.
func (h *Handlers) DeleteProgram(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid program ID", 400)
	}
	if err := h.Service.DeleteProgram(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Program deleted", nil)
}
