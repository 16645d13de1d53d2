package middleware

import (
	"net/http/httptest"
	"testing"

	"tmf-backend/internal/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp(permission string, seed *SessionUser) *fiber.App {
	app := fiber.New()
	if seed != nil {
		app.Use(func(c *fiber.Ctx) error {
			SetSessionUser(c, *seed)
			return c.Next()
		})
	}
	app.Get("/protected", RequireAuth(), AuthorizePermission(permission), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireAuth_NoSession(t *testing.T) {
	app := protectedApp(constants.ViewDashboard, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthorizePermission_RoleNotAllowed(t *testing.T) {
	app := protectedApp(constants.ManageUsers, &SessionUser{UserID: "u1", Email: "e@tmf.org", Role: constants.Manager})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestAuthorizePermission_RoleAllowed(t *testing.T) {
	app := protectedApp(constants.ManageUsers, &SessionUser{UserID: "u1", Email: "e@tmf.org", Role: constants.SuperAdmin})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthorizePermission_UnknownPermission(t *testing.T) {
	app := protectedApp("no_such_permission", &SessionUser{UserID: "u1", Email: "e@tmf.org", Role: constants.SuperAdmin})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestGetActor_ParsesSessionShape(t *testing.T) {
	app := fiber.New()
	app.Get("/actor", func(c *fiber.Ctx) error {
		SetSessionUser(c, SessionUser{UserID: "u1", Email: "e@tmf.org", Role: constants.Editor})
		actor := GetActor(c)
		require.NotNil(t, actor)
		assert.Equal(t, "u1", actor.UserID)
		assert.Equal(t, constants.Editor, actor.Role)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/actor", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
