package product

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
	// /home before /:id so the literal segment is not swallowed by the param
	app.Get("/api/products/home", h.home)
	app.Get("/api/products/:id/display", h.display)
	app.Get("/api/products/:id", h.detail)
	app.Get("/api/products", h.list)
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Put("/products/:id", h.update)
}

func (h *Handler) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "product list unavailable"})
	}
	return c.JSON(items)
}

func (h *Handler) detail(c *fiber.Ctx) error {
	d, err := h.service.Detail(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy sản phẩm"})
	}
	return c.JSON(d)
}

func (h *Handler) display(c *fiber.Ctx) error {
	state, err := h.service.Display(c.Context(), c.Params("id"),
		c.Query("color"), c.Query("size"), c.Query("image"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Không tìm thấy sản phẩm"})
	}
	return c.JSON(state)
}

func (h *Handler) home(c *fiber.Ctx) error {
	home, err := h.service.Home(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "home shelves unavailable"})
	}
	return c.JSON(home)
}

func (h *Handler) update(c *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	updated, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "update failed"})
	}
	return c.JSON(updated)
}
