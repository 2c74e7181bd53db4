package handler

import "github.com/gofiber/fiber/v2"

// Health responds without the data envelope.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Service is healthy!",
		"version": h.Cfg.Version,
	})
}
