package health

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"tmf-backend/internal/config"
	healthsvc "tmf-backend/internal/health"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers holds dependencies for health endpoints.
type Handlers struct {
	Rdb    *redis.Client
	DB     healthsvc.DBPinger
	Config *config.Config
}

func (h *Handlers) collectOpts() healthsvc.CollectOptions {
	return healthsvc.CollectOptions{
		FrontendURL: h.Config.VerifyBaseURL,
		SupabaseURL: h.Config.SupabaseURL,
		SMTPReady:   h.Config.SMTPReady(),
	}
}

// APIHealth GET /api/health — the lightweight readiness probe with its
// environment checklist.
func (h *Handlers) APIHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Server is healthy",
		"env": fiber.Map{
			"SUPABASE_URL":     h.Config.SupabaseURL != "",
			"SERVICE_ROLE_KEY": h.Config.SupabaseSecretKey != "",
			"SMTP_READY":       h.Config.SMTPReady(),
		},
	})
}

// Reset clears traffic stats in Redis. Requires query key=HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" || key != h.Config.HealthAdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusForbidden)
	}
	ctx := context.Background()
	keys := []string{middleware.KeyReqTotal, middleware.KeyReqErrors, middleware.KeyResTime, middleware.KeyResCount, middleware.KeyStartTime, middleware.KeyLastReq, middleware.KeyErrorLog}
	if err := h.Rdb.Del(ctx, keys...).Err(); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	if err := h.Rdb.Set(ctx, middleware.KeyStartTime, strconv.FormatInt(time.Now().UnixMilli(), 10), 0).Err(); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError)
	}
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true})
}

// JSON GET /health/json — full health payload for the dashboard poller.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(context.Background(), h.Rdb, h.DB, h.collectOpts())
	return c.JSON(map[string]interface{}{
		"service":      "tmf-api",
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"dependencies": result.Dependencies,
	})
}

// Errors GET /health/errors — last 50 recorded internal errors.
func (h *Handlers) Errors(c *fiber.Ctx) error {
	entries, err := h.Rdb.LRange(context.Background(), middleware.KeyErrorLog, 0, 49).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON([]interface{}{})
	}
	errors := make([]map[string]interface{}, 0, len(entries))
	for _, s := range entries {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			errors = append(errors, m)
		}
	}
	return c.JSON(errors)
}

// Dashboard GET / — the HTML status page with embedded health data.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(context.Background(), h.Rdb, h.DB, h.collectOpts())
	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(healthsvc.RenderDashboardHTML(result))
}
