package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type TicketHandler struct {
	service ports.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service ports.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log,
	}
}

// List returns either the active tickets (default) or the history of used,
// expired and returned ones when ?history=true.
func (h *TicketHandler) List(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	tickets, err := h.service.Tickets(c.Context(), sessionID, !c.QueryBool("history"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets, "count": len(tickets)})
}

func (h *TicketHandler) Return(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	ticket, err := h.service.Return(c.Context(), sessionID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(ticket)
}

type DamageReportRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (h *TicketHandler) ReportDamage(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)

	var req DamageReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "description is required"})
	}

	report := domain.DamageReport{
		TicketID:    c.Params("id"),
		SessionID:   sessionID,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := h.service.ReportDamage(c.Context(), &report); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}
