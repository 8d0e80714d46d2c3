package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type AccountHandler struct {
	service ports.AccountService
	log     *zap.Logger
}

func NewAccountHandler(service ports.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log,
	}
}

func (h *AccountHandler) Favorites(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	favorites, err := h.service.Favorites(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"favorites": favorites})
}

func (h *AccountHandler) AddFavorite(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.AddFavorite(c.Context(), sessionID, c.Params("stationId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) RemoveFavorite(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.RemoveFavorite(c.Context(), sessionID, c.Params("stationId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) History(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	history, err := h.service.History(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"history": history, "count": len(history)})
}

func (h *AccountHandler) AddHistory(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	var session domain.ChargingSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	session.SessionID = sessionID

	if err := h.service.AddHistory(c.Context(), &session); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *AccountHandler) RemoveHistory(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.RemoveHistory(c.Context(), sessionID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) ClearHistory(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.ClearHistory(c.Context(), sessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) HistoryStats(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	var (
		stats *domain.HistoryStats
		err   error
	)
	if c.Query("period") == "month" {
		stats, err = h.service.MonthlyHistoryStats(c.Context(), sessionID)
	} else {
		stats, err = h.service.HistoryStats(c.Context(), sessionID)
	}
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

type SubscribeRequest struct {
	StationID   string `json:"station_id"`
	StationName string `json:"station_name"`
	Email       string `json:"email"`
}

func (h *AccountHandler) Subscribe(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	var req SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.StationID == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "station_id and email are required"})
	}

	sub := domain.Subscription{
		SessionID:   sessionID,
		StationID:   req.StationID,
		StationName: req.StationName,
		Email:       req.Email,
	}
	if err := h.service.Subscribe(c.Context(), &sub); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

func (h *AccountHandler) Unsubscribe(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.Unsubscribe(c.Context(), sessionID, c.Params("stationId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AccountHandler) Subscriptions(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	subs, err := h.service.Subscriptions(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subscriptions": subs, "count": len(subs)})
}
