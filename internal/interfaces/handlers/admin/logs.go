package admin

import (
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecordLogRequest body for client-reported audit entries.
type RecordLogRequest struct {
	Action   string                 `json:"action"`
	Entity   string                 `json:"entity"`
	EntityID string                 `json:"entity_id"`
	Details  map[string]interface{} `json:"details"`
}

// RecordLog POST /api/v1/admin/logs — lets the admin UI report actions that
// happen client-side. The actor always comes from the session.
func (h *Handlers) RecordLog(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req RecordLogRequest
	if err := c.BodyParser(&req); err != nil || req.Action == "" || req.Entity == "" {
		return response.Error(c, "action and entity are required", 400)
	}

	h.Logs.Record(c.Context(), actor.UserID, actor.Email, req.Action, req.Entity, req.EntityID, req.Details)
	return response.SuccessCreated(c, "Log recorded", nil)
}

// ListLogs GET /api/v1/admin/logs — super_admin only, ?limit= caps results.
func (h *Handlers) ListLogs(c *fiber.Ctx) error {
	rows, err := h.Logs.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return response.Error(c, "Could not load logs", 500)
	}
	return response.Success(c, "Logs loaded", fiber.Map{"logs": rows})
}
