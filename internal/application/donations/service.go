package donations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	certsvc "tmf-backend/internal/application/certificates"
	"tmf-backend/internal/application/emails"
	"tmf-backend/internal/application/outbox"
	"tmf-backend/internal/application/realtime"
	"tmf-backend/internal/domain"
	"tmf-backend/internal/pkg/validation"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrSMTPUnavailable = errors.New("email sending is not configured")
	ErrSendFailed      = errors.New("certificate email could not be sent")
)

// Service owns donation writes and reads. A successful Create also raises an
// admin notification, queues the certificate email, and pings the dashboard.
type Service struct {
	DB     *gorm.DB
	Certs  *certsvc.Service
	Sender emails.Sender
	Hub    *realtime.Hub
	Log    zerolog.Logger
}

// CreateInput mirrors the public donation form.
type CreateInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	PaymentMethod string  `json:"payment_method"`
	Anonymous     bool    `json:"anonymous"`
	TaxBenefit    bool    `json:"tax_benefit"`
	PAN           string  `json:"pan"`
	Address       string  `json:"address"`
}

func (in *CreateInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return ErrNameRequired
	}
	if !validation.IsValidEmail(in.Email) {
		return ErrInvalidEmail
	}
	if !validation.IsPositiveAmount(in.Amount) {
		return ErrInvalidAmount
	}
	return nil
}

// Create validates and inserts a donation. The notification and certificate
// job are best-effort; the donation row is the source of truth.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Donation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	donation := &domain.Donation{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         optional(in.Phone),
		Amount:        in.Amount,
		Type:          defaultString(in.Type, "one-time"),
		PaymentMethod: in.PaymentMethod,
		Anonymous:     in.Anonymous,
		TaxBenefit:    in.TaxBenefit,
		PAN:           optional(in.PAN),
		Address:       optional(in.Address),
	}
	if err := s.DB.WithContext(ctx).Create(donation).Error; err != nil {
		return nil, err
	}

	notif := &domain.AdminNotification{
		Type:    "donation",
		Title:   "New Donation",
		Message: fmt.Sprintf("New donation of ₹%.0f from %s", donation.Amount, displayName(donation)),
	}
	if err := s.DB.WithContext(ctx).Create(notif).Error; err != nil {
		s.Log.Error().Err(err).Msg("create donation notification")
	}

	if _, err := outbox.Enqueue(ctx, s.DB, &donation.ID, donation.Name, donation.Email, donation.Amount); err != nil {
		s.Log.Error().Err(err).Str("donation_id", donation.ID.String()).Msg("enqueue certificate job")
	}

	if s.Hub != nil {
		s.Hub.Publish("donations")
	}
	return donation, nil
}

// List returns all donations, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Donation, error) {
	var rows []domain.Donation
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// LeaderboardEntry is one row of the public top-donor list.
type LeaderboardEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Leaderboard returns the ten largest non-anonymous donations.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var rows []LeaderboardEntry
	err := s.DB.WithContext(ctx).
		Model(&domain.Donation{}).
		Select("name, amount").
		Where("anonymous = ?", false).
		Order("amount DESC").
		Limit(10).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SendCertificate issues a certificate outside the donation flow and emails
// it immediately. The certificate row is persisted before the send is
// attempted, so a verification lookup works even when delivery fails.
func (s *Service) SendCertificate(ctx context.Context, name, email string, amount float64) (*domain.Certificate, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsPositiveAmount(amount) {
		return nil, ErrInvalidAmount
	}

	cert, pdf, err := s.Certs.Issue(ctx, nil, name, email, amount)
	if err != nil {
		return nil, err
	}

	if s.Sender == nil {
		return cert, ErrSMTPUnavailable
	}
	if err := s.Sender.SendCertificate(cert.Email, cert.Name, cert.Amount, cert.CertificateID, cert.VerifyURL, pdf); err != nil {
		s.Log.Error().Err(err).Str("certificate_id", cert.CertificateID).Msg("send certificate email")
		return cert, ErrSendFailed
	}

	notif := &domain.AdminNotification{
		Type:    "certificate",
		Title:   "Certificate Sent",
		Message: fmt.Sprintf("Certificate %s emailed to %s", cert.CertificateID, cert.Email),
	}
	if err := s.DB.WithContext(ctx).Create(notif).Error; err != nil {
		s.Log.Error().Err(err).Msg("create certificate notification")
	}
	return cert, nil
}

func displayName(d *domain.Donation) string {
	if d.Anonymous {
		return "an anonymous donor"
	}
	return d.Name
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
