package guard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/session"
)

// Pages gates admin console page routes. Auth and role failures redirect
// silently; there is no error body before the redirect.
func Pages(g *Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := session.NewCookieStore(c)
		switch g.Evaluate(c.Context(), c.Path(), store) {
		case RedirectLogin:
			return c.Redirect(LoginPath, fiber.StatusFound)
		case RedirectUnauthorized:
			return c.Redirect(UnauthorizedPath, fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}
