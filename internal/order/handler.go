package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kydtrai11/dambody-storefront/internal/cart"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.directOrder)
	app.Post("/api/checkout", h.checkout)
}

func (h *Handler) directOrder(c *fiber.Ctx) error {
	req := new(Request)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Direct(c.Context(), *req); err != nil {
		if status, ok := validationStatus(err); ok {
			return c.Status(status).JSON(fiber.Map{"message": err.Error()})
		}
		// upstream failure: the user retries, nothing was changed locally
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "order submission failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "order placed"})
}

type checkoutRequest struct {
	Indices  []int    `json:"indices"`
	Customer Customer `json:"customer"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	remain, err := h.service.Checkout(c.Context(), cart.CartID(c), payload.Indices, payload.Customer)
	if err != nil {
		if status, ok := validationStatus(err); ok {
			return c.Status(status).JSON(fiber.Map{"message": err.Error()})
		}
		if err == cart.ErrIndexOutOfRange {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "order submission failed"})
	}
	return c.JSON(fiber.Map{"message": "orders placed", "lines": remain, "count": len(remain)})
}

func validationStatus(err error) (int, bool) {
	switch err {
	case ErrMissingName, ErrInvalidPhone, ErrMissingAddress, ErrInvalidQty, ErrNoSelection:
		return fiber.StatusBadRequest, true
	}
	return 0, false
}
