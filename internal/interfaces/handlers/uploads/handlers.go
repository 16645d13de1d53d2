package uploads

import (
	"errors"

	uploadsvc "tmf-backend/internal/application/uploads"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers signs content-image uploads for the admin UI.
type Handlers struct {
	Service *uploadsvc.Service
}

// SignUploadRequest body.
type SignUploadRequest struct {
	Bucket   string `json:"bucket"`
	FileName string `json:"file_name"`
}

// SignUpload POST /api/v1/uploads/sign — editors and managers upload blog
// covers and program images straight to storage.
func (h *Handlers) SignUpload(c *fiber.Ctx) error {
	var req SignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "bucket and file_name are required", 400)
	}

	result, err := h.Service.SignUpload(c.Context(), req.Bucket, req.FileName)
	if err != nil {
		switch {
		case errors.Is(err, uploadsvc.ErrBucketNotAllowed),
			errors.Is(err, uploadsvc.ErrFileNameRequired):
			return response.Error(c, err.Error(), 400)
		}
		return response.Error(c, "Could not sign upload", 502)
	}
	return response.Success(c, "Upload signed", result)
}
