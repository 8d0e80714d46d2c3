package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

const defaultNearbyRadiusKm = 5.0

type StationHandler struct {
	service ports.StationService
	log     *zap.Logger
}

func NewStationHandler(service ports.StationService, log *zap.Logger) *StationHandler {
	return &StationHandler{
		service: service,
		log:     log,
	}
}

// List returns the filtered, sorted station catalog. All filters arrive as
// query parameters and are optional.
func (h *StationHandler) List(c *fiber.Ctx) error {
	query := ports.StationQuery{
		Availability: c.Query("availability"),
		Operator:     c.Query("operator"),
		OnlyOpen:     c.QueryBool("open"),
		SortBy:       c.Query("sort"),
	}

	for _, cat := range splitParam(c.Query("power")) {
		query.PowerCategories = append(query.PowerCategories, domain.PowerCategory(cat))
	}
	query.ConnectorTypes = splitParam(c.Query("connectors"))

	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid max_price"})
		}
		query.MaxPrice = &price
	}

	if pos, ok, err := parsePosition(c); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid coordinates"})
	} else if ok {
		query.UserPosition = &pos
	}

	stations, err := h.service.ListStations(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stations": stations, "count": len(stations)})
}

func (h *StationHandler) Get(c *fiber.Ctx) error {
	station, err := h.service.GetStation(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if station == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Station not found"})
	}
	return c.JSON(station)
}

func (h *StationHandler) Nearby(c *fiber.Ctx) error {
	pos, ok, err := parsePosition(c)
	if err != nil || !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "lat and lng are required"})
	}

	radius := defaultNearbyRadiusKm
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid radius"})
		}
	}

	stations, err := h.service.GetNearby(c.Context(), pos, radius)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stations": stations, "count": len(stations)})
}

func (h *StationHandler) Search(c *fiber.Ctx) error {
	stations, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stations": stations, "count": len(stations)})
}

func (h *StationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *StationHandler) PriceStats(c *fiber.Ctx) error {
	stats, err := h.service.GetPriceStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *StationHandler) Connectors(c *fiber.Ctx) error {
	types, err := h.service.ConnectorTypes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"connectors": types})
}

func (h *StationHandler) Operators(c *fiber.Ctx) error {
	operators, err := h.service.Operators(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"operators": operators})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parsePosition reads optional lat/lng query parameters. ok is false when
// neither is present.
func parsePosition(c *fiber.Ctx) (geo.Coordinate, bool, error) {
	rawLat, rawLng := c.Query("lat"), c.Query("lng")
	if rawLat == "" && rawLng == "" {
		return geo.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return geo.Coordinate{}, false, err
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return geo.Coordinate{}, false, err
	}
	return geo.Coordinate{Latitude: lat, Longitude: lng}, true, nil
}
