package contact

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	adminsvc "tmf-backend/internal/application/admin"
	contactsvc "tmf-backend/internal/application/contact"
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

type replyCall struct {
	Email   string
	Name    string
	Message string
}

type fakeSender struct {
	replies []replyCall
}

func (f *fakeSender) SendCertificate(toEmail, name string, amount float64, certificateID, verifyURL string, pdf []byte) error {
	return nil
}

func (f *fakeSender) SendReply(toEmail, name, message string) error {
	f.replies = append(f.replies, replyCall{Email: toEmail, Name: name, Message: message})
	return nil
}

func (f *fakeSender) SendVolunteerStatus(toEmail, name, status string) error { return nil }

func setupContactTest(t *testing.T, withSender bool) (*fiber.App, *Handlers, *gorm.DB, *fakeSender) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.ContactMessage{}, &domain.AdminNotification{}, &domain.AdminLog{}))

	svc := &contactsvc.Service{DB: db, Log: zerolog.Nop()}
	var sender *fakeSender
	if withSender {
		sender = &fakeSender{}
		svc.Sender = sender
	}
	h := &Handlers{Service: svc, Logs: &adminsvc.LogsService{DB: db, Log: zerolog.Nop()}}
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

func TestSubmit_CreatesNewMessage(t *testing.T) {
	app, h, db, _ := setupContactTest(t, true)
	app.Post("/contact", h.Submit)

	req := httptest.NewRequest("POST", "/contact", jsonBody(t, fiber.Map{
		"name":    "Priya",
		"email":   "priya@example.com",
		"subject": "Partnership",
		"message": "We would like to partner with you.",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var row domain.ContactMessage
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, domain.MessageNew, row.Status)

	var notifCount int64
	require.NoError(t, db.Model(&domain.AdminNotification{}).Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)
}

func TestSubmit_RequiresMessage(t *testing.T) {
	app, h, _, _ := setupContactTest(t, true)
	app.Post("/contact", h.Submit)

	req := httptest.NewRequest("POST", "/contact", jsonBody(t, fiber.Map{
		"name":  "Priya",
		"email": "priya@example.com",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateStatus_MovesToInProgress(t *testing.T) {
	app, h, db, _ := setupContactTest(t, true)
	app.Patch("/contact/status", h.UpdateStatus)

	row := domain.ContactMessage{Name: "Priya", Email: "priya@example.com", Message: "Hello"}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("PATCH", "/contact/status", jsonBody(t, fiber.Map{
		"id":     row.ID.String(),
		"status": domain.MessageInProgress,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var updated domain.ContactMessage
	require.NoError(t, db.First(&updated, "id = ?", row.ID).Error)
	assert.Equal(t, domain.MessageInProgress, updated.Status)
}

func TestReply_SendsAndResolves(t *testing.T) {
	app, h, db, sender := setupContactTest(t, true)
	app.Post("/contact/reply", h.Reply)

	row := domain.ContactMessage{Name: "Priya", Email: "priya@example.com", Message: "Hello"}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("POST", "/contact/reply", jsonBody(t, fiber.Map{
		"id":    row.ID.String(),
		"reply": "Thanks for reaching out, we will call you.",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.Len(t, sender.replies, 1)
	assert.Equal(t, "priya@example.com", sender.replies[0].Email)

	var updated domain.ContactMessage
	require.NoError(t, db.First(&updated, "id = ?", row.ID).Error)
	assert.Equal(t, domain.MessageResolved, updated.Status)
}

func TestReply_WithoutSMTP(t *testing.T) {
	app, h, db, _ := setupContactTest(t, false)
	app.Post("/contact/reply", h.Reply)

	row := domain.ContactMessage{Name: "Priya", Email: "priya@example.com", Message: "Hello"}
	require.NoError(t, db.Create(&row).Error)

	req := httptest.NewRequest("POST", "/contact/reply", jsonBody(t, fiber.Map{
		"id":    row.ID.String(),
		"reply": "This cannot go out.",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var unchanged domain.ContactMessage
	require.NoError(t, db.First(&unchanged, "id = ?", row.ID).Error)
	assert.Equal(t, domain.MessageNew, unchanged.Status)
}

func TestRemove_DeletesAndAudits(t *testing.T) {
	app, h, db, _ := setupContactTest(t, false)
	actorID := uuid.NewString()
	app.Delete("/contact/:id", asActor(actorID, "root@tmf.org", constants.SuperAdmin, h.Remove))

	row := domain.ContactMessage{Name: "Priya", Email: "priya@example.com", Message: "Hello"}
	require.NoError(t, db.Create(&row).Error)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/contact/"+row.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.ContactMessage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	var entry domain.AdminLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, actorID, entry.ActorUserID)
	assert.Equal(t, "delete", entry.Action)
	assert.Equal(t, "contact_message", entry.Entity)
}

func TestRemove_UnknownID(t *testing.T) {
	app, h, _, _ := setupContactTest(t, false)
	app.Delete("/contact/:id", asActor(uuid.NewString(), "root@tmf.org", constants.SuperAdmin, h.Remove))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/contact/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
