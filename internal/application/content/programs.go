package content

import (
	"context"
	"strings"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
)

// ProgramInput mirrors the admin program form.
type ProgramInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// CreateProgram inserts a draft program.
func (s *Service) CreateProgram(ctx context.Context, in ProgramInput) (*domain.Program, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Description == "" {
		return nil, ErrBodyRequired
	}

	p := &domain.Program{
		Title:       in.Title,
		Description: in.Description,
		Category:    defaultString(in.Category, "General"),
		ImageURL:    optional(in.ImageURL),
		Status:      domain.StatusDraft,
	}
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("programs")
	}
	return p, nil
}

// ListPrograms returns every program for the admin view.
func (s *Service) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	var rows []domain.Program
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedPrograms returns the public feed.
func (s *Service) PublishedPrograms(ctx context.Context) ([]domain.Program, error) {
	var rows []domain.Program
	err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateProgram rewrites the editable fields without touching status.
func (s *Service) UpdateProgram(ctx context.Context, id uuid.UUID, in ProgramInput) (*domain.Program, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Description == "" {
		return nil, ErrBodyRequired
	}

	var p domain.Program
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	p.Title = in.Title
	p.Description = in.Description
	p.Category = defaultString(in.Category, p.Category)
	p.ImageURL = optional(in.ImageURL)
	if err := s.DB.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("programs")
	}
	return &p, nil
}

func (s *Service) PublishProgram(ctx context.Context, id uuid.UUID) error {
	return s.publish(ctx, &domain.Program{}, "programs", id)
}

func (s *Service) UnpublishProgram(ctx context.Context, id uuid.UUID) error {
	return s.unpublish(ctx, &domain.Program{}, "programs", id)
}

func (s *Service) DeleteProgram(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, &domain.Program{}, "programs", id)
}
