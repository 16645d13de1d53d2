package content

import (
	"errors"

	contentsvc "tmf-backend/internal/application/content"
	"tmf-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers exposes the four content kinds: public published feeds plus the
// admin CRUD and publish lifecycle.
type Handlers struct {
	Service *contentsvc.Service
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func mapContentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contentsvc.ErrTitleRequired),
		errors.Is(err, contentsvc.ErrBodyRequired):
		return response.Error(c, err.Error(), 400)
	case errors.Is(err, contentsvc.ErrNotFound):
		return response.NotFound(c, err.Error())
	}
	return response.Error(c, "Something went wrong", 500)
}
