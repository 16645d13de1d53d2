package content

import (
	"context"
	"strings"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
)

// InternshipInput mirrors the admin internship form.
type InternshipInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
}

// CreateInternship inserts a draft listing.
func (s *Service) CreateInternship(ctx context.Context, in InternshipInput) (*domain.Internship, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Description == "" {
		return nil, ErrBodyRequired
	}

	i := &domain.Internship{
		Title:       in.Title,
		Description: in.Description,
		Location:    optional(in.Location),
		Duration:    optional(in.Duration),
		Status:      domain.StatusDraft,
	}
	if err := s.DB.WithContext(ctx).Create(i).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("internships")
	}
	return i, nil
}

// ListInternships returns every listing for the admin view.
func (s *Service) ListInternships(ctx context.Context) ([]domain.Internship, error) {
	var rows []domain.Internship
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedInternships returns the public feed.
func (s *Service) PublishedInternships(ctx context.Context) ([]domain.Internship, error) {
	var rows []domain.Internship
	err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateInternship rewrites the editable fields without touching status.
func (s *Service) UpdateInternship(ctx context.Context, id uuid.UUID, in InternshipInput) (*domain.Internship, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Description == "" {
		return nil, ErrBodyRequired
	}

	var i domain.Internship
	if err := s.DB.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	i.Title = in.Title
	i.Description = in.Description
	i.Location = optional(in.Location)
	i.Duration = optional(in.Duration)
	if err := s.DB.WithContext(ctx).Save(&i).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("internships")
	}
	return &i, nil
}

func (s *Service) PublishInternship(ctx context.Context, id uuid.UUID) error {
	return s.publish(ctx, &domain.Internship{}, "internships", id)
}

func (s *Service) UnpublishInternship(ctx context.Context, id uuid.UUID) error {
	return s.unpublish(ctx, &domain.Internship{}, "internships", id)
}

func (s *Service) DeleteInternship(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, &domain.Internship{}, "internships", id)
}
