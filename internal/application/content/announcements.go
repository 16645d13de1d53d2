package content

import (
	"context"
	"strings"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
)

// AnnouncementInput mirrors the admin announcement form.
type AnnouncementInput struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	Visibility string `json:"visibility"`
}

// CreateAnnouncement inserts a draft announcement.
func (s *Service) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*domain.Announcement, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Message == "" {
		return nil, ErrBodyRequired
	}

	a := &domain.Announcement{
		Title:      in.Title,
		Message:    in.Message,
		Type:       optional(in.Type),
		Visibility: defaultString(in.Visibility, "home"),
		Status:     domain.StatusDraft,
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("announcements")
	}
	return a, nil
}

// ListAnnouncements returns every announcement for the admin view.
func (s *Service) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	var rows []domain.Announcement
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedAnnouncements returns the public feed, optionally filtered by
// visibility.
func (s *Service) PublishedAnnouncements(ctx context.Context, visibility string) ([]domain.Announcement, error) {
	q := s.DB.WithContext(ctx).Where("status = ?", domain.StatusPublished)
	if visibility != "" {
		q = q.Where("visibility = ?", visibility)
	}
	var rows []domain.Announcement
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateAnnouncement rewrites the editable fields without touching status.
func (s *Service) UpdateAnnouncement(ctx context.Context, id uuid.UUID, in AnnouncementInput) (*domain.Announcement, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Message == "" {
		return nil, ErrBodyRequired
	}

	var a domain.Announcement
	if err := s.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	a.Title = in.Title
	a.Message = in.Message
	a.Type = optional(in.Type)
	a.Visibility = defaultString(in.Visibility, a.Visibility)
	if err := s.DB.WithContext(ctx).Save(&a).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("announcements")
	}
	return &a, nil
}

func (s *Service) PublishAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.publish(ctx, &domain.Announcement{}, "announcements", id)
}

func (s *Service) UnpublishAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.unpublish(ctx, &domain.Announcement{}, "announcements", id)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, &domain.Announcement{}, "announcements", id)
}
