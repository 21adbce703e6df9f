package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kydtrai11/dambody-storefront/internal/catalog"
)

// CookieName carries the cart id across page loads.
const CookieName = "cart_id"

const cookieMaxAge = 60 * 60 * 24 * 30

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart", h.addLine)
	app.Patch("/api/cart/:index", h.adjustQuantity)
	app.Delete("/api/cart/:index", h.removeLine)
}

// CartID returns the session's cart id, issuing the cookie on first touch.
func CartID(c *fiber.Ctx) string {
	if id := c.Cookies(CookieName); id != "" {
		return id
	}
	id := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

type cartResponse struct {
	Lines []Line `json:"lines"`
	Count int    `json:"count"`
}

func respond(c *fiber.Ctx, lines []Line) error {
	return c.JSON(cartResponse{Lines: lines, Count: len(lines)})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	lines, err := h.service.Lines(CartID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, lines)
}

func (h *Handler) addLine(c *fiber.Ctx) error {
	line := new(Line)
	if err := c.BodyParser(line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if line.Quantity == 0 {
		line.Quantity = 1
	}
	line.Image = catalog.NormalizeImage(line.Image)

	lines, err := h.service.Add(CartID(c), *line)
	if err != nil {
		if err == ErrInvalidLine {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, lines)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) adjustQuantity(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}
	payload := new(adjustRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	lines, err := h.service.AdjustQuantity(CartID(c), index, payload.Delta)
	if err != nil {
		if err == ErrIndexOutOfRange {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, lines)
}

func (h *Handler) removeLine(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid index"})
	}

	lines, err := h.service.Remove(CartID(c), index)
	if err != nil {
		if err == ErrIndexOutOfRange {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return respond(c, lines)
}
