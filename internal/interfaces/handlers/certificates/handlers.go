package certificates

import (
	"errors"
	"fmt"
	"html"
	"strconv"

	certsvc "tmf-backend/internal/application/certificates"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the public certificate verification page.
type Handlers struct {
	Service *certsvc.Service
}

// Verify GET /verify/:certificateId — public HTML page. 200 with the
// certificate details when the id is known, 404 page otherwise.
func (h *Handlers) Verify(c *fiber.Ctx) error {
	certificateID := c.Params("certificateId")

	cert, err := h.Service.Get(c.Context(), certificateID)
	if err != nil {
		if errors.Is(err, certsvc.ErrNotFound) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Status(fiber.StatusNotFound).SendString(notFoundPage(certificateID))
		}
		return fiber.NewError(fiber.StatusInternalServerError, "verification lookup failed")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(verifiedPage(cert.Name, cert.Amount, cert.IssuedAt.Format("02 Jan 2006"), cert.CertificateID))
}

func verifiedPage(name string, amount float64, date, certificateID string) string {
	return pageShell("Certificate Verified", fmt.Sprintf(`
      <div class="badge ok">&#10003;</div>
      <h1>Certificate Verified</h1>
      <p class="sub">This certificate was issued by the Thannmanngaadi Foundation and is authentic.</p>
      <div class="panel">
        <div class="row"><span>Donor</span><strong>%s</strong></div>
        <div class="row"><span>Amount</span><strong>&#8377;%s</strong></div>
        <div class="row"><span>Issued On</span><strong>%s</strong></div>
        <div class="row"><span>Certificate ID</span><strong>%s</strong></div>
      </div>`,
		html.EscapeString(name),
		strconv.FormatFloat(amount, 'f', -1, 64),
		html.EscapeString(date),
		html.EscapeString(certificateID)))
}

func notFoundPage(certificateID string) string {
	return pageShell("Certificate Not Found", fmt.Sprintf(`
      <div class="badge bad">&#10007;</div>
      <h1>Certificate Not Found</h1>
      <p class="sub">No certificate with ID <strong>%s</strong> was issued by the Thannmanngaadi Foundation. If you believe this is an error, please contact us through our website.</p>`,
		html.EscapeString(certificateID)))
}

func pageShell(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s · Thannmanngaadi Foundation</title>
  <style>
    body { margin: 0; background: #F8FAFC; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #0F172A; display: flex; align-items: center; justify-content: center; min-height: 100vh; }
    .card { background: #fff; border-radius: 20px; box-shadow: 0 20px 60px -20px rgba(29, 78, 216, 0.2); max-width: 480px; width: 100%%; margin: 20px; padding: 48px 40px; text-align: center; }
    .badge { width: 64px; height: 64px; border-radius: 50%%; margin: 0 auto 24px; display: flex; align-items: center; justify-content: center; font-size: 30px; color: #fff; }
    .badge.ok { background: #16A34A; }
    .badge.bad { background: #DC2626; }
    h1 { margin: 0 0 8px; font-size: 26px; letter-spacing: -0.5px; }
    .sub { color: #64748B; font-size: 15px; line-height: 1.6; margin: 0 0 28px; }
    .panel { background: #EFF6FF; border-radius: 12px; padding: 20px 24px; text-align: left; }
    .row { display: flex; justify-content: space-between; padding: 8px 0; font-size: 14px; border-bottom: 1px solid rgba(29, 78, 216, 0.08); }
    .row:last-child { border-bottom: none; }
    .row span { color: #64748B; }
    .footer { margin-top: 28px; font-size: 12px; color: #94A3B8; }
  </style>
</head>
<body>
  <div class="card">%s
    <div class="footer">Thannmanngaadi Foundation &middot; Certificate Verification</div>
  </div>
</body>
</html>`, html.EscapeString(title), body)
}
