package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"custodyapi/internal/auth"
)

// OwnerLocalKey is the key under which the authenticated subject identifier is
// stored in Fiber's context locals. It is the only claim carried past the auth
// boundary and the tenancy key for every record below it.
const OwnerLocalKey = "owner"

// RequireAuth validates the bearer credential against the external
// introspection service.
//
// Behavior:
// - Reads the Authorization header and requires the Bearer scheme.
// - Calls the introspection endpoint with the raw token.
// - On an active token, stores the subject identifier under OwnerLocalKey.
// - Any other outcome ends the request with 401.
func RequireAuth(introspector auth.Introspector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return fiber.ErrUnauthorized
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return fiber.ErrUnauthorized
		}

		res, err := introspector.Introspect(c.UserContext(), token)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if !res.Active || res.Subject == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals(OwnerLocalKey, res.Subject)
		return c.Next()
	}
}
