package volunteers

import (
	"context"
	"errors"
	"strings"

	"tmf-backend/internal/application/emails"
	"tmf-backend/internal/application/realtime"
	"tmf-backend/internal/domain"
	"tmf-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrInvalidEmail  = errors.New("a valid email is required")
	ErrInvalidStatus = errors.New("status must be Pending, Approved or Rejected")
	ErrNotFound      = errors.New("volunteer application not found")
)

// Service handles public volunteer signups and admin status decisions.
type Service struct {
	DB     *gorm.DB
	Sender emails.Sender
	Hub    *realtime.Hub
	Log    zerolog.Logger
}

// ApplyInput mirrors the public volunteer form.
type ApplyInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Interest string `json:"interest"`
}

// Apply records a new application in Pending state.
func (s *Service) Apply(ctx context.Context, in ApplyInput) (*domain.VolunteerApplication, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}

	app := &domain.VolunteerApplication{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    optional(in.Phone),
		City:     optional(in.City),
		Interest: optional(in.Interest),
		Status:   domain.VolunteerPending,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}

	notif := &domain.AdminNotification{
		Type:    "volunteer",
		Title:   "New Volunteer Application",
		Message: "New volunteer application from " + app.Name,
	}
	if err := s.DB.WithContext(ctx).Create(notif).Error; err != nil {
		s.Log.Error().Err(err).Msg("create volunteer notification")
	}

	if s.Hub != nil {
		s.Hub.Publish("volunteer_applications")
	}
	return app, nil
}

// List returns all applications, newest first.
func (s *Service) List(ctx context.Context) ([]domain.VolunteerApplication, error) {
	var rows []domain.VolunteerApplication
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus updates an application's status and emails the volunteer the
// decision. The status write commits regardless of email outcome; the
// returned bool reports whether the decision email went out.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*domain.VolunteerApplication, bool, error) {
	switch status {
	case domain.VolunteerPending, domain.VolunteerApproved, domain.VolunteerRejected:
	default:
		return nil, false, ErrInvalidStatus
	}

	var app domain.VolunteerApplication
	if err := s.DB.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	if err := s.DB.WithContext(ctx).Model(&app).Update("status", status).Error; err != nil {
		return nil, false, err
	}
	app.Status = status

	emailSent := false
	if s.Sender != nil {
		if err := s.Sender.SendVolunteerStatus(app.Email, app.Name, status); err != nil {
			s.Log.Error().Err(err).Str("email", app.Email).Msg("send volunteer status email")
		} else {
			emailSent = true
		}
	}
	if s.Hub != nil {
		s.Hub.Publish("volunteer_applications")
	}
	return &app, emailSent, nil
}

// Delete removes an application permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&domain.VolunteerApplication{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if s.Hub != nil {
		s.Hub.Publish("volunteer_applications")
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
