package auth

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

// RequireSession guards admin page navigation: a request without a valid
// session cookie is redirected to the login view with the originally
// requested path preserved as the return target.
func RequireSession(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := ParseToken(secret, c.Cookies(CookieName)); err != nil {
			return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		}
		return c.Next()
	}
}

// AdminAPI protects the admin JSON endpoints with the same session cookie;
// API callers get a 401 body instead of a redirect.
func AdminAPI(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  secret,
		TokenLookup: "cookie:" + CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}
