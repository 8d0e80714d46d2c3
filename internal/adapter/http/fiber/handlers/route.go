package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

type RouteHandler struct {
	service ports.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service ports.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log,
	}
}

type PlanRouteRequest struct {
	Start          geo.Coordinate `json:"start"`
	Destination    geo.Coordinate `json:"destination"`
	BatteryRangeKm float64        `json:"battery_range_km"`
}

func (h *RouteHandler) Plan(c *fiber.Ctx) error {
	var req PlanRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	plan, err := h.service.Plan(c.Context(), domain.RouteQuery{
		Start:          req.Start,
		Destination:    req.Destination,
		BatteryRangeKm: req.BatteryRangeKm,
	})
	if err != nil {
		return err
	}
	return c.JSON(plan)
}

func (h *RouteHandler) Destinations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"destinations": h.service.Destinations()})
}
