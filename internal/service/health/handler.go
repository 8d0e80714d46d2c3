package health

import (
	"github.com/gofiber/fiber/v2"
)

// FiberHandler exposes the probes over HTTP.
type FiberHandler struct {
	service *Service
}

func NewFiberHandler(service *Service) *FiberHandler {
	return &FiberHandler{service: service}
}

func (h *FiberHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)
}

func (h *FiberHandler) Live(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.service.Health(c.Context()))
}

func (h *FiberHandler) Ready(c *fiber.Ctx) error {
	response := h.service.Ready(c.Context())

	status := fiber.StatusOK
	if !response.Ready {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(response)
}
