package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type LotteryHandler struct {
	service ports.LotteryService
	log     *zap.Logger
}

func NewLotteryHandler(service ports.LotteryService, log *zap.Logger) *LotteryHandler {
	return &LotteryHandler{
		service: service,
		log:     log,
	}
}

func (h *LotteryHandler) Draw(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	prize, err := h.service.Draw(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(prize)
}

func (h *LotteryHandler) Prizes(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	prizes, err := h.service.Prizes(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"prizes": prizes, "count": len(prizes)})
}

func (h *LotteryHandler) UsePrize(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	if err := h.service.UsePrize(c.Context(), sessionID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LotteryHandler) Cooldown(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	remaining, err := h.service.Cooldown(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"can_draw":     remaining == 0,
		"remaining_ms": remaining,
	})
}
