package page

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/pages/:slug", h.get)
}

func (h *Handler) get(c *fiber.Ctx) error {
	p, ok := Get(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy trang"})
	}
	return c.JSON(p)
}
