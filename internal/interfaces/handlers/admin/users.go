package admin

import (
	"errors"

	adminsvc "tmf-backend/internal/application/admin"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers exposes admin account management, the audit log, and the
// notification feed. All routes sit behind ManageUsers or super_admin
// permissions except notifications.
type Handlers struct {
	Users         *adminsvc.UsersService
	Logs          *adminsvc.LogsService
	Notifications *adminsvc.NotificationsService
}

// CreateUserRequest body.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser POST /api/v1/admin/users — super_admin only.
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "email, password and role are required", 400)
	}

	user, err := h.Users.Create(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return mapUserError(c, err)
	}

	h.Logs.Record(c.Context(), actor.UserID, actor.Email, "create", "admin_user", user.UserID.String(),
		map[string]interface{}{"email": user.Email, "role": req.Role})
	return response.SuccessCreated(c, "User created successfully", fiber.Map{"user": user})
}

// ListUsers GET /api/v1/admin/users — super_admin only.
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	rows, err := h.Users.List(c.Context())
	if err != nil {
		return response.Error(c, "Could not load users", 500)
	}
	return response.Success(c, "Users loaded", fiber.Map{"users": rows})
}

// UpdateRoleRequest body.
type UpdateRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// UpdateRole PATCH /api/v1/admin/users/role — super_admin only. Revokes the
// target's sessions so the change is immediate.
func (h *Handlers) UpdateRole(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "user_id and role are required", 400)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.Error(c, "Invalid user ID", 400)
	}

	if err := h.Users.UpdateRole(c.Context(), actor.UserID, userID, req.Role); err != nil {
		return mapUserError(c, err)
	}

	h.Logs.Record(c.Context(), actor.UserID, actor.Email, "update_role", "admin_user", req.UserID,
		map[string]interface{}{"role": req.Role})
	return response.Success(c, "Role updated successfully", nil)
}

// DeleteUser DELETE /api/v1/admin/users/:id — super_admin only.
func (h *Handlers) DeleteUser(c *fiber.Ctx) error {
	actor := middleware.GetActor(c)
	if actor == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid user ID", 400)
	}

	if err := h.Users.Delete(c.Context(), actor.UserID, userID); err != nil {
		return mapUserError(c, err)
	}

	h.Logs.Record(c.Context(), actor.UserID, actor.Email, "delete", "admin_user", userID.String(), nil)
	return response.Success(c, "User deleted successfully", nil)
}

func mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, adminsvc.ErrInvalidEmail),
		errors.Is(err, adminsvc.ErrWeakPassword),
		errors.Is(err, adminsvc.ErrInvalidRole):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, adminsvc.ErrEmailTaken):
		return response.Error(c, err.Error(), 409)
	case errors.Is(err, adminsvc.ErrUserNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, adminsvc.ErrSelfDemotion),
		errors.Is(err, adminsvc.ErrSelfDeletion):
		return response.Error(c, err.Error(), 403)
	}
	return response.Error(c, "Something went wrong", 500)
}
