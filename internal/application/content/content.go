package content

import (
	"context"
	"errors"
	"strings"

	"tmf-backend/internal/application/realtime"
	"tmf-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrBodyRequired  = errors.New("content body is required")
	ErrNotFound      = errors.New("content not found")
)

// Service manages the four editor-facing content kinds. Everything is
// created as draft; only an explicit publish makes it publicly visible.
type Service struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

// setStatus flips one row's status, erroring when the row is missing.
func (s *Service) setStatus(ctx context.Context, model interface{}, table string, id uuid.UUID, status string) error {
	res := s.DB.WithContext(ctx).Model(model).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if s.Hub != nil {
		s.Hub.Publish(table)
	}
	return nil
}

func (s *Service) remove(ctx context.Context, model interface{}, table string, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	if s.Hub != nil {
		s.Hub.Publish(table)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, model interface{}, table string, id uuid.UUID) error {
	return s.setStatus(ctx, model, table, id, domain.StatusPublished)
}

func (s *Service) unpublish(ctx context.Context, model interface{}, table string, id uuid.UUID) error {
	return s.setStatus(ctx, model, table, id, domain.StatusDraft)
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
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
