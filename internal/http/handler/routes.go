package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"custodyapi/internal/auth"
	"custodyapi/internal/http/middleware"
	"custodyapi/internal/service"
)

const latestVersion = "v1"

// Services bundles the use-case layer dependencies of the HTTP surface.
type Services struct {
	Documents service.DocumentService
	States    service.StateService
	Backlog   service.BacklogService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Everything
// under /api/v1/private sits behind the introspection auth gate; the subject
// it yields is the owner key for every call below it.
func RegisterRoutes(app *fiber.App, db *sql.DB, introspector auth.Introspector, svcs Services) {
	requireAuth := middleware.RequireAuth(introspector)

	app.Get("/", Root())
	app.Get("/protected", requireAuth, Protected())

	v1 := app.Group("/api/v1")

	public := v1.Group("/public")
	public.Get("/", PublicRoot())

	private := v1.Group("/private", requireAuth)
	private.Get("/", PrivateRoot())

	// /document/all must be registered before /document/:id so "all" is not
	// swallowed by the id parameter.
	private.Get("/document/all", ListDocuments(svcs.Documents))
	private.Post("/document/add", AddDocument(svcs.Documents))
	private.Get("/document/:id", GetDocument(svcs.Documents))
	private.Delete("/document/:id", DeleteDocument(svcs.Documents))
	private.Get("/document/:id/state", GetDocumentState(svcs.States))
	private.Put("/document/:id/state", SetDocumentState(svcs.States))
	private.Get("/document/:id/picture/:side", GetDocumentPicture(svcs.Documents))
	private.Get("/backlog/all", ListBacklog(svcs.Backlog))

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})
}

// Root greets unauthenticated callers and advertises the latest API version.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":        "Hello World",
			"latest_version": latestVersion,
		})
	}
}

// Protected is an authenticated probe endpoint.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":        "Hello in Protected World",
			"latest_version": latestVersion,
		})
	}
}

// PublicRoot greets callers of the public API group.
func PublicRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello in Public World"})
	}
}

// PrivateRoot greets authenticated callers of the private API group.
func PrivateRoot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Hello in Private World"})
	}
}

// HealthCheck verifies DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint with no dependency checks.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ownerFromCtx returns the authenticated subject stored by the auth gate.
// An empty owner means the gate was bypassed or misconfigured; treat as
// unauthenticated rather than querying with an empty tenancy filter.
func ownerFromCtx(c *fiber.Ctx) (string, error) {
	owner, _ := c.Locals(middleware.OwnerLocalKey).(string)
	if owner == "" {
		return "", fiber.ErrUnauthorized
	}
	return owner, nil
}
