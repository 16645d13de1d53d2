package content

import (
	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreateBlog POST /api/v1/blogs — editor/super_admin.
func (h *Handlers) CreateBlog(c *fiber.Ctx) error {
	var req contentsvc.BlogInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	b, err := h.Service.CreateBlog(c.Context(), req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.SuccessCreated(c, "Blog created", fiber.Map{"blog": b})
}

// ListBlogs GET /api/v1/blogs — admin view, all statuses.
func (h *Handlers) ListBlogs(c *fiber.Ctx) error {
	rows, err := h.Service.ListBlogs(c.Context())
	if err != nil {
		return response.Error(c, "Could not load blogs", 500)
	}
	return response.Success(c, "Blogs loaded", fiber.Map{"blogs": rows})
}

// PublicBlogs GET /api/v1/blogs/published — public feed.
func (h *Handlers) PublicBlogs(c *fiber.Ctx) error {
	rows, err := h.Service.PublishedBlogs(c.Context())
	if err != nil {
		return response.Error(c, "Could not load blogs", 500)
	}
	return response.Success(c, "Blogs loaded", fiber.Map{"blogs": rows})
}

// GetBlog GET /api/v1/blogs/:id — admin view of one post.
func (h *Handlers) GetBlog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid blog ID", 400)
	}
	b, err := h.Service.GetBlog(c.Context(), id)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Blog loaded", fiber.Map{"blog": b})
}

// UpdateBlog PUT /api/v1/blogs/:id.
func (h *Handlers) UpdateBlog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid blog ID", 400)
	}
	var req contentsvc.BlogInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400)
	}
	b, err := h.Service.UpdateBlog(c.Context(), id, req)
	if err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Blog updated", fiber.Map{"blog": b})
}

// PublishBlog PATCH /api/v1/blogs/:id/publish.
func (h *Handlers) PublishBlog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid blog ID", 400)
	}
	if err := h.Service.PublishBlog(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Blog published", nil)
}

// UnpublishBlog PATCH /api/v1/blogs/:id/unpublish.
func (h *Handlers) UnpublishBlog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid blog ID", 400)
	}
	if err := h.Service.UnpublishBlog(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Blog unpublished", nil)
}

// DeleteBlog DELETE /api/v1/blogs/:id.
func (h *Handlers) DeleteBlog(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.Error(c, "Invalid blog ID", 400)
	}
	if err := h.Service.DeleteBlog(c.Context(), id); err != nil {
		return mapContentError(c, err)
	}
	return response.Success(c, "Blog deleted", nil)
}
