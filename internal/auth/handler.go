package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/kydtrai11/dambody-storefront/internal/upstream"
)

// Authenticator checks credentials against the upstream account store.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (upstream.User, error)
}

type Handler struct {
	authenticator Authenticator
	secret        []byte
}

func NewHandler(authenticator Authenticator, secret []byte) *Handler {
	return &Handler{authenticator: authenticator, secret: secret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/auth/login", h.login)
	app.Get("/api/auth/me", h.me)
	app.Post("/api/auth/logout", h.logout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	user, err := h.authenticator.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "message": "Đăng nhập thất bại"})
	}

	token, err := IssueToken(h.secret, Session{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"ok": true})
}

// me resolves the session cookie to the current user, the storefront's only
// authorization check.
func (h *Handler) me(c *fiber.Ctx) error {
	s, err := ParseToken(h.secret, c.Cookies(CookieName))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{"user": s})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"ok": true})
}
