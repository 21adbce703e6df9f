package upload

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

func (h *Handler) RegisterAdminRoutes(admin fiber.Router) {
	admin.Post("/upload/description", h.uploadDescription)
}

func (h *Handler) uploadDescription(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "thiếu file ảnh"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "không đọc được file ảnh"})
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Context(), f)
	if err != nil {
		log.Printf("upload description: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "upload failed"})
	}
	return c.JSON(fiber.Map{"url": url})
}
