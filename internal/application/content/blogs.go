package content

import (
	"context"
	"strings"

	"tmf-backend/internal/domain"

	"github.com/google/uuid"
)

// BlogInput mirrors the admin blog editor.
type BlogInput struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	Content         string `json:"content"`
	CoverImage      string `json:"cover_image"`
	MetaDescription string `json:"meta_description"`
}

// CreateBlog inserts a draft post.
func (s *Service) CreateBlog(ctx context.Context, in BlogInput) (*domain.Blog, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Content == "" {
		return nil, ErrBodyRequired
	}

	b := &domain.Blog{
		Title:           in.Title,
		Category:        defaultString(in.Category, "General"),
		Content:         in.Content,
		CoverImage:      optional(in.CoverImage),
		MetaDescription: optional(in.MetaDescription),
		Status:          domain.StatusDraft,
	}
	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("blogs")
	}
	return b, nil
}

// ListBlogs returns every post for the admin view.
func (s *Service) ListBlogs(ctx context.Context) ([]domain.Blog, error) {
	var rows []domain.Blog
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PublishedBlogs returns the public feed.
func (s *Service) PublishedBlogs(ctx context.Context) ([]domain.Blog, error) {
	var rows []domain.Blog
	err := s.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetBlog returns one post regardless of status.
func (s *Service) GetBlog(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	var b domain.Blog
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &b, nil
}

// UpdateBlog rewrites the editable fields without touching status.
func (s *Service) UpdateBlog(ctx context.Context, id uuid.UUID, in BlogInput) (*domain.Blog, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Content == "" {
		return nil, ErrBodyRequired
	}

	var b domain.Blog
	if err := s.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	b.Title = in.Title
	b.Category = defaultString(in.Category, b.Category)
	b.Content = in.Content
	b.CoverImage = optional(in.CoverImage)
	b.MetaDescription = optional(in.MetaDescription)
	if err := s.DB.WithContext(ctx).Save(&b).Error; err != nil {
		return nil, err
	}
	if s.Hub != nil {
		s.Hub.Publish("blogs")
	}
	return &b, nil
}

func (s *Service) PublishBlog(ctx context.Context, id uuid.UUID) error {
	return s.publish(ctx, &domain.Blog{}, "blogs", id)
}

func (s *Service) UnpublishBlog(ctx context.Context, id uuid.UUID) error {
	return s.unpublish(ctx, &domain.Blog{}, "blogs", id)
}

func (s *Service) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return s.remove(ctx, &domain.Blog{}, "blogs", id)
}
