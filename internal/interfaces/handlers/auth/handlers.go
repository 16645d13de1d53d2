package auth

import (
	"errors"

	authsvc "tmf-backend/internal/application/auth"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/constants"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers exposes login/logout/session endpoints.
type Handlers struct {
	Service *authsvc.Service
	Rdb     *redis.Client
	Config  middleware.SessionConfig
}

// LoginRequest body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /api/v1/auth/login — verify credentials, rotate the session id,
// store the identity, set the cookie.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Email and password are required", 400)
	}
	if req.Email == "" || req.Password == "" {
		return response.Error(c, "Email and password are required", 400)
	}

	identity, err := h.Service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.Error(c, "Login failed", 500)
	}

	sid := middleware.RegenerateSessionID(c)
	middleware.SetSessionUser(c, middleware.SessionUser{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
	})
	if h.Rdb != nil {
		_ = middleware.TrackUserSession(c.Context(), h.Rdb, identity.UserID, sid)
	}

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = "s:" + sid
	c.Cookie(&cookie)

	return response.Success(c, "Logged in successfully", fiber.Map{"user": identity})
}

// Me GET /api/v1/auth/me — return the session identity with a fresh role
// lookup so role changes surface without re-login.
func (h *Handlers) Me(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	identity, err := h.Service.Verify(c.Context(), actor.UserID)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Session user no longer exists")
		}
		return response.Error(c, "Could not verify session", 500)
	}
	return response.Success(c, "Session active", fiber.Map{"user": identity})
}

// Logout POST /api/v1/auth/logout — delete the Redis session, untrack it,
// clear the cookie.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	sid := middleware.GetSessionID(c)

	if h.Rdb != nil && sid != "" {
		_ = h.Rdb.Del(c.Context(), middleware.SessionRedisPrefix+sid).Err()
		if actor != nil {
			_ = middleware.UntrackUserSession(c.Context(), h.Rdb, actor.UserID, sid)
		}
	}
	middleware.DestroySession(c)

	cookie := middleware.SessionCookieConfig(h.Config)
	cookie.Value = ""
	cookie.MaxAge = -1
	c.Cookie(&cookie)

	return response.Success(c, "Logged out successfully", nil)
}

// CanAccessRequest body.
type CanAccessRequest struct {
	Route string `json:"route"`
}

// CanAccess POST /api/v1/auth/can-access — server-side route authorization
// for the admin UI's navigation guard.
func (h *Handlers) CanAccess(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CanAccessRequest
	if err := c.BodyParser(&req); err != nil || req.Route == "" {
		return response.Error(c, "route is required", 400)
	}

	allowed := constants.CanAccess(req.Route, actor.Role)
	return response.Success(c, "Access evaluated", fiber.Map{
		"route":   req.Route,
		"role":    actor.Role,
		"allowed": allowed,
	})
}
