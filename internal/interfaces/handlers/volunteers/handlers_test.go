package volunteers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	adminsvc "tmf-backend/internal/application/admin"
	volsvc "tmf-backend/internal/application/volunteers"
	"tmf-backend/internal/domain"
	"tmf-backend/internal/middleware"
	"tmf-backend/internal/pkg/constants"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type statusCall struct {
	Email  string
	Name   string
	Status string
}

type fakeSender struct {
	statuses []statusCall
	failWith error
}

func (f *fakeSender) SendCertificate(toEmail, name string, amount float64, certificateID, verifyURL string, pdf []byte) error {
	return nil
}

func (f *fakeSender) SendReply(toEmail, name, message string) error { return nil }

func (f *fakeSender) SendVolunteerStatus(toEmail, name, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.statuses = append(f.statuses, statusCall{Email: toEmail, Name: name, Status: status})
	return nil
}

func setupVolunteerTest(t *testing.T) (*fiber.App, *Handlers, *gorm.DB, *fakeSender) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.VolunteerApplication{}, &domain.AdminNotification{}, &domain.AdminLog{}))

	sender := &fakeSender{}
	h := &Handlers{
		Service: &volsvc.Service{DB: db, Sender: sender, Log: zerolog.Nop()},
		Logs:    &adminsvc.LogsService{DB: db, Log: zerolog.Nop()},
	}
	return fiber.New(), h, db, sender
}

// asActor seeds the session identity before the wrapped handler runs.
func asActor(userID, email, role string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		middleware.SetSessionUser(c, middleware.SessionUser{UserID: userID, Email: email, Role: role})
		return next(c)
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestApply_CreatesPendingApplication(t *testing.T) {
	app, h, db, _ := setupVolunteerTest(t)
	app.Post("/volunteers", h.Apply)

	req := httptest.NewRequest("POST", "/volunteers", jsonBody(t, fiber.Map{
		"name":     "Nisha Kumar",
		"email":    "nisha@example.com",
		"city":     "Kochi",
		"interest": "Teaching",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var row domain.VolunteerApplication
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, domain.VolunteerPending, row.Status)
	require.NotNil(t, row.City)
	assert.Equal(t, "Kochi", *row.City)

	var notifCount int64
	require.NoError(t, db.Model(&domain.AdminNotification{}).Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestApply_RejectsBadEmail(t *testing.T) {
	app, h, _, _ := setupVolunteerTest(t)
	app.Post("/volunteers", h.Apply)

	req := httptest.NewRequest("POST", "/volunteers", jsonBody(t, fiber.Map{
		"name":  "Bad Email",
		"email": "not-an-email",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateStatus_ApprovesAndEmails(t *testing.T) {
	app, h, db, sender := setupVolunteerTest(t)
	app.Patch("/volunteers/status", h.UpdateStatus)

	row := domain.VolunteerApplication{Name: "Rahul", Email: "rahul@example.com", Status: domain.VolunteerPending}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("PATCH", "/volunteers/status", jsonBody(t, fiber.Map{
		"id":     row.ID.String(),
		"status": domain.VolunteerApproved,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var updated domain.VolunteerApplication
	require.NoError(t, db.First(&updated, "id = ?", row.ID).Error)
	assert.Equal(t, domain.VolunteerApproved, updated.Status)

	require.Len(t, sender.statuses, 1)
	assert.Equal(t, statusCall{Email: "rahul@example.com", Name: "Rahul", Status: domain.VolunteerApproved}, sender.statuses[0])

	var body struct {
		Data struct {
			EmailSent bool `json:"email_sent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Data.EmailSent)
}

func TestUpdateStatus_ReportsEmailFailure(t *testing.T) {
	app, h, db, sender := setupVolunteerTest(t)
	sender.failWith = errors.New("smtp down")
	app.Patch("/volunteers/status", h.UpdateStatus)

	row := domain.VolunteerApplication{Name: "Rahul", Email: "rahul@example.com", Status: domain.VolunteerPending}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("PATCH", "/volunteers/status", jsonBody(t, fiber.Map{
		"id":     row.ID.String(),
		"status": domain.VolunteerApproved,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// The status write sticks even when the email does not go out.
	var updated domain.VolunteerApplication
	require.NoError(t, db.First(&updated, "id = ?", row.ID).Error)
	assert.Equal(t, domain.VolunteerApproved, updated.Status)

	var body struct {
		Data struct {
			EmailSent bool `json:"email_sent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Data.EmailSent)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	app, h, db, sender := setupVolunteerTest(t)
	app.Patch("/volunteers/status", h.UpdateStatus)

	row := domain.VolunteerApplication{Name: "Rahul", Email: "rahul@example.com"}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("PATCH", "/volunteers/status", jsonBody(t, fiber.Map{
		"id":     row.ID.String(),
		"status": "Shortlisted",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, sender.statuses)
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	app, h, _, _ := setupVolunteerTest(t)
	app.Patch("/volunteers/status", h.UpdateStatus)

	req := httptest.NewRequest("PATCH", "/volunteers/status", jsonBody(t, fiber.Map{
		"id":     uuid.NewString(),
		"status": domain.VolunteerRejected,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestRemove_DeletesAndAudits(t *testing.T) {
	app, h, db, _ := setupVolunteerTest(t)
	actorID := uuid.NewString()
	app.Delete("/volunteers/:id", asActor(actorID, "root@tmf.org", constants.SuperAdmin, h.Remove))

	row := domain.VolunteerApplication{Name: "Rahul", Email: "rahul@example.com", Status: domain.VolunteerPending}
	require.NoError(t, db.Create(&row).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/volunteers/"+row.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.VolunteerApplication{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var entry domain.AdminLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, actorID, entry.ActorUserID)
	assert.Equal(t, "delete", entry.Action)
	assert.Equal(t, "volunteer_application", entry.Entity)
}

func TestRemove_UnknownID(t *testing.T) {
	app, h, _, _ := setupVolunteerTest(t)
	app.Delete("/volunteers/:id", asActor(uuid.NewString(), "root@tmf.org", constants.SuperAdmin, h.Remove))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/volunteers/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestList_RequiresAuth(t *testing.T) {
	app, h, _, _ := setupVolunteerTest(t)
	app.Get("/volunteers", middleware.RequireAuth(), h.List)

	resp, err := app.Test(httptest.NewRequest("GET", "/volunteers", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
