package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"custodyapi/internal/service"
)

// GetDocumentState returns the lifecycle state record for a document.
// The document is checked first so a missing document and a missing state
// record surface as distinct not-found details.
func GetDocumentState(svc service.StateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}

		st, err := svc.Get(c.UserContext(), owner, id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "Document not found")
			case errors.Is(err, service.ErrStateNotFound):
				return writeError(c, fiber.StatusNotFound, "Document state not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(st)
	}
}

// SetDocumentState overwrites the document's state with the literal from the
// ?state= query parameter. Any of the four literals may follow any other.
func SetDocumentState(svc service.StateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		literal := c.Query("state")

		st, err := svc.Set(c.UserContext(), owner, id, literal)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidState):
				return writeError(c, fiber.StatusBadRequest, "missing or unrecognized state")
			case errors.Is(err, service.ErrDocumentNotFound):
				return writeError(c, fiber.StatusNotFound, "Document not found")
			case errors.Is(err, service.ErrStateNotFound):
				return writeError(c, fiber.StatusNotFound, "Document state not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Document state updated successfully",
			"state":   st.State,
		})
	}
}
