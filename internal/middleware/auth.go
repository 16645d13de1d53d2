package middleware

import (
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth ensures a user is in the session. Returns 401 with the standard
// error format if not.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals(userLocal)
		if user == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}

// SessionActor is the parsed session identity for handlers.
type SessionActor struct {
	UserID string
	Email  string
	Role   string
}

// GetActor parses the session user map into a SessionActor. Nil when not
// logged in or the session shape is unexpected.
func GetActor(c *fiber.Ctx) *SessionActor {
	u := GetUser(c)
	if u == nil {
		return nil
	}
	m, ok := u.(map[string]interface{})
	if !ok {
		return nil
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil
	}
	email, _ := m["email"].(string)
	role, _ := m["role"].(string)
	return &SessionActor{UserID: userID, Email: email, Role: role}
}
