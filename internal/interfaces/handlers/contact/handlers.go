package contact

import (
	"errors"

	adminsvc "tmf-backend/internal/application/admin"
	contactsvc "tmf-backend/internal/application/contact"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers exposes the public contact form and the admin inbox.
type Handlers struct {
	Service *contactsvc.Service
	Logs    *adminsvc.LogsService
}

// Submit POST /api/v1/contact — public.
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var req contactsvc.SubmitInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}

	msg, err := h.Service.Submit(c.Context(), req)
	if err != nil {
		return mapContactError(c, err)
	}
	return response.SuccessCreated(c, "Message received", fiber.Map{"message": msg})
}

// List GET /api/v1/contact — admin only.
func (h *Handlers) List(c *fiber.Ctx) error {
	rows, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Could not load messages", 500)
	}
	return response.Success(c, "Messages loaded", fiber.Map{"messages": rows})
}

// UpdateStatusRequest body.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateStatus PATCH /api/v1/contact/status — admin only.
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "id and status are required", 400)
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return response.Error(c, "Invalid message ID", 400)
	}

	msg, err := h.Service.SetStatus(c.Context(), id, req.Status)
	if err != nil {
		return mapContactError(c, err)
	}
	return response.Success(c, "Message status updated", fiber.Map{"message": msg})
}

// Remove DELETE /api/v1/contact/:id — admin only.
func (h *Handlers) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid message ID", 400)
	}

	if err := h.Service.Delete(c.Context(), id); err != nil {
		return mapContactError(c, err)
	}
	if actor := middleware.GetActor(c); actor != nil && h.Logs != nil {
		h.Logs.Record(c.Context(), actor.UserID, actor.Email, "delete", "contact_message", id.String(), nil)
	}
	return response.Success(c, "Message removed", nil)
}

// ReplyRequest body.
type ReplyRequest struct {
	ID    string `json:"id"`
	Reply string `json:"reply"`
}

// Reply POST /api/v1/contact/reply — admin only. Emails the response and
// marks the message resolved.
func (h *Handlers) Reply(c *fiber.Ctx) error {
	var req ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "id and reply are required", 400)
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return response.Error(c, "Invalid message ID", 400)
	}

	msg, err := h.Service.Reply(c.Context(), id, req.Reply)
	if err != nil {
		return mapContactError(c, err)
	}
	return response.Success(c, "Reply sent", fiber.Map{"message": msg})
}

func mapContactError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contactsvc.ErrNameRequired),
		errors.Is(err, contactsvc.ErrInvalidEmail),
		errors.Is(err, contactsvc.ErrMessageRequired),
		errors.Is(err, contactsvc.ErrInvalidStatus):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, contactsvc.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, contactsvc.ErrSMTPUnavailable):
		return response.Error(c, err.Error(), 503)
	}
	return response.Error(c, "Something went wrong", 500)
}
