package contact

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
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email is required")
	ErrMessageRequired = errors.New("message is required")
	ErrInvalidStatus   = errors.New("status must be new, in_progress or resolved")
	ErrNotFound        = errors.New("message not found")
	ErrSMTPUnavailable = errors.New("email sending is not configured")
)

// Service stores contact-form messages and lets admins reply over email.
type Service struct {
	DB     *gorm.DB
	Sender emails.Sender
	Hub    *realtime.Hub
	Log    zerolog.Logger
}

// SubmitInput mirrors the public contact form.
type SubmitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit records a contact-form message in "new" state.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	if !validation.IsValidEmail(in.Email) {
		return nil, ErrInvalidEmail
	}
	if in.Message == "" {
		return nil, ErrMessageRequired
	}

	msg := &domain.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   optional(in.Phone),
		Subject: optional(in.Subject),
		Message: in.Message,
		Status:  domain.MessageNew,
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, err
	}

	notif := &domain.AdminNotification{
		Type:    "message",
		Title:   "New Contact Message",
		Message: "New contact message from " + msg.Name,
	}
	if err := s.DB.WithContext(ctx).Create(notif).Error; err != nil {
		s.Log.Error().Err(err).Msg("create contact notification")
	}

	if s.Hub != nil {
		s.Hub.Publish("contact_messages")
	}
	return msg, nil
}

// List returns all messages, newest first.
func (s *Service) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []domain.ContactMessage
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SetStatus moves a message through the triage states.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status string) (*domain.ContactMessage, error) {
	switch status {
	case domain.MessageNew, domain.MessageInProgress, domain.MessageResolved:
	default:
		return nil, ErrInvalidStatus
	}

	var msg domain.ContactMessage
	if err := s.DB.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&msg).Update("status", status).Error; err != nil {
		return nil, err
	}
	msg.Status = status
	return &msg, nil
}

// Delete removes a message permanently.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Delete(&domain.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if s.Hub != nil {
		s.Hub.Publish("contact_messages")
	}
	return nil
}

// Reply emails an admin-written response to the message sender and marks the
// message resolved.
func (s *Service) Reply(ctx context.Context, id uuid.UUID, reply string) (*domain.ContactMessage, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, ErrMessageRequired
	}
	if s.Sender == nil {
		return nil, ErrSMTPUnavailable
	}

	var msg domain.ContactMessage
	if err := s.DB.WithContext(ctx).First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.Sender.SendReply(msg.Email, msg.Name, reply); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&msg).Update("status", domain.MessageResolved).Error; err != nil {
		return nil, err
	}
	msg.Status = domain.MessageResolved
	return &msg, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
