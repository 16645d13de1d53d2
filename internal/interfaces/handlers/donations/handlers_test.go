package donations

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	certsvc "tmf-backend/internal/application/certificates"
	donsvc "tmf-backend/internal/application/donations"
	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type certCall struct {
	Email         string
	CertificateID string
}

type fakeSender struct {
	certs    []certCall
	failWith error
}

func (f *fakeSender) SendCertificate(toEmail, name string, amount float64, certificateID, verifyURL string, pdf []byte) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.certs = append(f.certs, certCall{Email: toEmail, CertificateID: certificateID})
	return nil
}

func (f *fakeSender) SendReply(toEmail, name, message string) error { return nil }

func (f *fakeSender) SendVolunteerStatus(toEmail, name, status string) error { return nil }

func setupDonationTest(t *testing.T) (*fiber.App, *Handlers, *gorm.DB, *fakeSender) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Donation{},
		&domain.AdminNotification{},
		&domain.CertificateJob{},
		&domain.Certificate{},
	))

	sender := &fakeSender{}
	svc := &donsvc.Service{
		DB:     db,
		Certs:  &certsvc.Service{DB: db, VerifyBase: "https://example.org"},
		Sender: sender,
		Log:    zerolog.Nop(),
	}
	return fiber.New(), &Handlers{Service: svc}, db, sender
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestCreateDonation_Success(t *testing.T) {
	app, h, db, _ := setupDonationTest(t)
	app.Post("/donations", h.Create)

	req := httptest.NewRequest("POST", "/donations", jsonBody(t, fiber.Map{
		"name":   "Lakshmi Menon",
		"email":  "lakshmi@example.com",
		"amount": 2500,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var donation domain.Donation
	require.NoError(t, db.First(&donation).Error)
	assert.Equal(t, "Lakshmi Menon", donation.Name)
	assert.Equal(t, "one-time", donation.Type)

	// Side effects: bell notification and a queued certificate job.
	var notifCount int64
	require.NoError(t, db.Model(&domain.AdminNotification{}).Count(&notifCount).Error)
	assert.Equal(t, int64(1), notifCount)

	var job domain.CertificateJob
	require.NoError(t, db.First(&job).Error)
	assert.Equal(t, domain.JobPending, job.Status)
	require.NotNil(t, job.DonationID)
	assert.Equal(t, donation.ID, *job.DonationID)
}

func TestCreateDonation_MissingEmail(t *testing.T) {
	app, h, db, _ := setupDonationTest(t)
	app.Post("/donations", h.Create)

	req := httptest.NewRequest("POST", "/donations", jsonBody(t, fiber.Map{
		"name":   "No Email",
		"amount": 100,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&domain.Donation{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateDonation_ZeroAmount(t *testing.T) {
	app, h, _, _ := setupDonationTest(t)
	app.Post("/donations", h.Create)

	req := httptest.NewRequest("POST", "/donations", jsonBody(t, fiber.Map{
		"name":   "Zero",
		"email":  "zero@example.com",
		"amount": 0,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestLeaderboard_ExcludesAnonymous(t *testing.T) {
	app, h, db, _ := setupDonationTest(t)
	app.Get("/leaderboard", h.Leaderboard)

	seed := []domain.Donation{
		{Name: "Big Donor", Email: "big@example.com", Amount: 9000, Type: "one-time"},
		{Name: "Quiet Donor", Email: "quiet@example.com", Amount: 8000, Type: "one-time", Anonymous: true},
		{Name: "Small Donor", Email: "small@example.com", Amount: 50, Type: "one-time"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/leaderboard", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data struct {
			Leaderboard []donsvc.LeaderboardEntry `json:"leaderboard"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data.Leaderboard, 2)
	assert.Equal(t, "Big Donor", body.Data.Leaderboard[0].Name)
	assert.Equal(t, "Small Donor", body.Data.Leaderboard[1].Name)
}

func TestSendCertificate_IssuesAndEmails(t *testing.T) {
	app, h, db, sender := setupDonationTest(t)
	app.Post("/send-certificate", h.SendCertificate)

	req := httptest.NewRequest("POST", "/send-certificate", jsonBody(t, fiber.Map{
		"name":   "Manual Send",
		"email":  "manual@example.com",
		"amount": 1000,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var cert domain.Certificate
	require.NoError(t, db.First(&cert).Error)
	assert.Nil(t, cert.DonationID)
	assert.Equal(t, "Manual Send", cert.Name)

	require.Len(t, sender.certs, 1)
	assert.Equal(t, certCall{Email: "manual@example.com", CertificateID: cert.CertificateID}, sender.certs[0])

	var body struct {
		Data struct {
			CertificateID string `json:"certificate_id"`
			EmailSent     bool   `json:"email_sent"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, cert.CertificateID, body.Data.CertificateID)
	assert.True(t, body.Data.EmailSent)
}

func TestSendCertificate_SendFailureIs500(t *testing.T) {
	app, h, db, sender := setupDonationTest(t)
	sender.failWith = errors.New("smtp down")
	app.Post("/send-certificate", h.SendCertificate)

	req := httptest.NewRequest("POST", "/send-certificate", jsonBody(t, fiber.Map{
		"name":   "Manual Send",
		"email":  "manual@example.com",
		"amount": 1000,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	// The certificate row survives the failed send so verification works.
	var count int64
	require.NoError(t, db.Model(&domain.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSendCertificate_NoSMTPIs500(t *testing.T) {
	app, h, _, _ := setupDonationTest(t)
	h.Service.Sender = nil
	app.Post("/send-certificate", h.SendCertificate)

	req := httptest.NewRequest("POST", "/send-certificate", jsonBody(t, fiber.Map{
		"name":   "Manual Send",
		"email":  "manual@example.com",
		"amount": 1000,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
