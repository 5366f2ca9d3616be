package handler

import (
	"github.com/gofiber/fiber/v2"

	"custodyapi/internal/service"
)

// ListBacklog returns the caller's fetch audit trail, append-only and never
// filtered or truncated.
func ListBacklog(svc service.BacklogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, err := ownerFromCtx(c)
		if err != nil {
			return err
		}

		res, err := svc.List(c.UserContext(), owner)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return c.JSON(res)
	}
}
