package donations

import (
	"errors"

	donsvc "tmf-backend/internal/application/donations"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers exposes the public donation form and the admin donation views.
type Handlers struct {
	Service *donsvc.Service
}

// Create POST /api/v1/donations — public, no auth.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req donsvc.CreateInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}

	donation, err := h.Service.Create(c.Context(), req)
	if err != nil {
		return mapDonationError(c, err)
	}
	return response.SuccessCreated(c, "Donation recorded successfully", fiber.Map{"donation": donation})
}

// List GET /api/v1/donations — admin only (route-level permission).
func (h *Handlers) List(c *fiber.Ctx) error {
	rows, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Could not load donations", 500)
	}
	return response.Success(c, "Donations loaded", fiber.Map{"donations": rows})
}

// Leaderboard GET /api/v1/donations/leaderboard — public top-10 donors.
func (h *Handlers) Leaderboard(c *fiber.Ctx) error {
	rows, err := h.Service.Leaderboard(c.Context())
	if err != nil {
		return response.Error(c, "Could not load leaderboard", 500)
	}
	return response.Success(c, "Leaderboard loaded", fiber.Map{"leaderboard": rows})
}

// SendCertificateRequest body for manual certificate sends.
type SendCertificateRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Amount float64 `json:"amount"`
}

// SendCertificate POST /api/v1/donations/send-certificate — public. Issues
// the certificate and emails it in-request; a failed send is a 500 even
// though the certificate row already exists.
func (h *Handlers) SendCertificate(c *fiber.Ctx) error {
	var req SendCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}

	cert, err := h.Service.SendCertificate(c.Context(), req.Name, req.Email, req.Amount)
	if err != nil {
		return mapDonationError(c, err)
	}
	return response.Success(c, "Certificate sent successfully", fiber.Map{
		"certificate_id": cert.CertificateID,
		"email_sent":     true,
	})
}

func mapDonationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, donsvc.ErrNameRequired),
		errors.Is(err, donsvc.ErrInvalidEmail),
		errors.Is(err, donsvc.ErrInvalidAmount):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, donsvc.ErrSMTPUnavailable),
		errors.Is(err, donsvc.ErrSendFailed):
		return response.Error(c, err.Error(), 500)
	}
	return response.Error(c, "Something went wrong", 500)
}
