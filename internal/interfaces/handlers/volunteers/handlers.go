package volunteers

import (
	"errors"

	adminsvc "tmf-backend/internal/application/admin"
	volsvc "tmf-backend/internal/application/volunteers"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers exposes the public volunteer form and the admin review endpoints.
type Handlers struct {
	Service *volsvc.Service
	Logs    *adminsvc.LogsService
}

// Apply POST /api/v1/volunteers — public.
func (h *Handlers) Apply(c *fiber.Ctx) error {
	var req volsvc.ApplyInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}

	app, err := h.Service.Apply(c.Context(), req)
	if err != nil {
		return mapVolunteerError(c, err)
	}
	return response.SuccessCreated(c, "Application submitted successfully", fiber.Map{"application": app})
}

// List GET /api/v1/volunteers — admin only.
func (h *Handlers) List(c *fiber.Ctx) error {
	rows, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Could not load applications", 500)
	}
	return response.Success(c, "Applications loaded", fiber.Map{"applications": rows})
}

// UpdateStatusRequest body.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus PATCH /api/v1/volunteers/status — admin only. Sets the status
// and emails the applicant the decision.
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "id and status are required", 400)
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return response.Error(c, "Invalid application ID", 400)
	}

	app, emailSent, err := h.Service.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapVolunteerError(c, err)
	}
	return response.Success(c, "Application status updated", fiber.Map{
		"application": app,
		"email_sent":  emailSent,
	})
}

// Remove DELETE /api/v1/volunteers/:id — admin only.
func (h *Handlers) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid application ID", 400)
	}

	if err := h.Service.Delete(c.Context(), id); err != nil {
		return mapVolunteerError(c, err)
	}
	if actor := middleware.GetActor(c); actor != nil && h.Logs != nil {
		h.Logs.Record(c.Context(), actor.UserID, actor.Email, "delete", "volunteer_application", id.String(), nil)
	}
	return response.Success(c, "Application removed", nil)
}

func mapVolunteerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, volsvc.ErrNameRequired),
		errors.Is(err, volsvc.ErrInvalidEmail),
		errors.Is(err, volsvc.ErrInvalidStatus):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, volsvc.ErrNotFound):
		return response.NotFound(c, err.Error())
	}
	return response.Error(c, "Something went wrong", 500)
}
