package certificates

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	certsvc "tmf-backend/internal/application/certificates"
	"tmf-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVerifyTest(t *testing.T) (*fiber.App, *certsvc.Service) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Certificate{}))

	svc := &certsvc.Service{DB: db, VerifyBase: "https://example.org"}
	app := fiber.New()
	h := &Handlers{Service: svc}
	app.Get("/verify/:certificateId", h.Verify)
	return app, svc
}

func TestVerify_KnownCertificate(t *testing.T) {
	app, svc := setupVerifyTest(t)

	cert, _, err := svc.Issue(context.Background(), nil, "Geetha <Nair>", "geetha@example.com", 1234.5)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/verify/"+cert.CertificateID, nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	assert.Contains(t, page, "Certificate Verified")
	assert.Contains(t, page, "Geetha &lt;Nair&gt;")
	assert.Contains(t, page, "1234.5")
	assert.Contains(t, page, cert.CertificateID)
}

func TestVerify_UnknownCertificate(t *testing.T) {
	app, _ := setupVerifyTest(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/verify/CERT-0", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "Certificate Not Found"))
}
