package dashboard

import (
	dashsvc "tmf-backend/internal/application/dashboard"
	"tmf-backend/internal/application/realtime"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Handlers serves the admin dashboard summary and its live-update socket.
type Handlers struct {
	Service *dashsvc.Service
	Hub     *realtime.Hub
}

// Summary GET /api/v1/dashboard — any authenticated role.
func (h *Handlers) Summary(c *fiber.Ctx) error {
	summary, err := h.Service.Summary(c.Context())
	if err != nil {
		return response.Error(c, "Could not load dashboard", 500)
	}
	return response.Success(c, "Dashboard loaded", summary)
}

// WSUpgrade gates /api/v1/dashboard/ws to real websocket upgrade requests.
func (h *Handlers) WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WS is the websocket endpoint pushing debounced dashboard_refresh messages.
func (h *Handlers) WS() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		h.Hub.Register(c)
	})
}
