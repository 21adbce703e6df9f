package category

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories/tree", h.tree)
	app.Get("/api/categories/:id", h.get)
	app.Get("/api/categories", h.list)
}

func (h *Handler) list(c *fiber.Ctx) error {
	categories, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "categories unavailable"})
	}
	return c.JSON(categories)
}

func (h *Handler) tree(c *fiber.Ctx) error {
	roots, err := h.service.Tree(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "categories unavailable"})
	}
	return c.JSON(roots)
}

func (h *Handler) get(c *fiber.Ctx) error {
	cat, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy danh mục"})
	}
	return c.JSON(cat)
}
