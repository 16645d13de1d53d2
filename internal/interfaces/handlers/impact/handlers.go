package impact

import (
	"errors"

	impactsvc "tmf-backend/internal/application/impact"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the public impact widgets and their admin management.
type Handlers struct {
	Service *impactsvc.Service
}

// LiveStats GET /api/v1/impact/live — public donation totals.
func (h *Handlers) LiveStats(c *fiber.Ctx) error {
	stats, err := h.Service.LiveStats(c.Context())
	if err != nil {
		return response.Error(c, "Could not load live stats", 500)
	}
	return response.Success(c, "Live stats loaded", stats)
}

// ListRules GET /api/v1/impact/rules — public.
func (h *Handlers) ListRules(c *fiber.Ctx) error {
	rules, err := h.Service.Rules(c.Context())
	if err != nil {
		return response.Error(c, "Could not load impact rules", 500)
	}
	return response.Success(c, "Impact rules loaded", fiber.Map{"rules": rules})
}

// RuleRequest body for rule upserts and deletes.
type RuleRequest struct {
	Amount     float64 `json:"amount"`
	Label      string  `json:"label"`
	ImpactText string  `json:"impact_text"`
}

// UpsertRule PUT /api/v1/impact/rules — super_admin only. Keyed by amount.
func (h *Handlers) UpsertRule(c *fiber.Ctx) error {
	var req RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	rule, err := h.Service.UpsertRule(c.Context(), req.Amount, req.Label, req.ImpactText)
	if err != nil {
		return mapImpactError(c, err)
	}
	return response.Success(c, "Impact rule saved", fiber.Map{"rule": rule})
}

// DeleteRule DELETE /api/v1/impact/rules — super_admin only. Keyed by amount.
func (h *Handlers) DeleteRule(c *fiber.Ctx) error {
	var req RuleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	if err := h.Service.DeleteRule(c.Context(), req.Amount); err != nil {
		return mapImpactError(c, err)
	}
	return response.Success(c, "Impact rule deleted", nil)
}

// Goal GET /api/v1/impact/goal — public fundraising target.
func (h *Handlers) Goal(c *fiber.Ctx) error {
	goal, err := h.Service.Goal(c.Context())
	if err != nil {
		return response.Error(c, "Could not load goal", 500)
	}
	return response.Success(c, "Goal loaded", fiber.Map{"goal": goal})
}

// GoalRequest body.
type GoalRequest struct {
	Title  string  `json:"title"`
	Target float64 `json:"target"`
}

// SetGoal PUT /api/v1/impact/goal — super_admin only.
func (h *Handlers) SetGoal(c *fiber.Ctx) error {
	var req GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	goal, err := h.Service.SetGoal(c.Context(), req.Title, req.Target)
	if err != nil {
		return mapImpactError(c, err)
	}
	return response.Success(c, "Goal saved", fiber.Map{"goal": goal})
}

func mapImpactError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, impactsvc.ErrInvalidAmount),
		errors.Is(err, impactsvc.ErrLabelRequired):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, impactsvc.ErrRuleNotFound):
		return response.NotFound(c, err.Error())
	}
	return response.Error(c, "Something went wrong", 500)
}
