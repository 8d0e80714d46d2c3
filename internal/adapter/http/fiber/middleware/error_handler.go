package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/service/auth"
	"github.com/karta-lodzianina/ev-backend/internal/service/lottery"
	"github.com/karta-lodzianina/ev-backend/internal/service/route"
	"github.com/karta-lodzianina/ev-backend/internal/service/station"
	"github.com/karta-lodzianina/ev-backend/internal/service/ticket"
)

// ErrorHandler maps service errors onto HTTP statuses so handlers can return
// errors unwrapped.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		if code == fiber.StatusInternalServerError {
			log.Error("Internal Server Error", zap.Error(err), zap.String("path", c.Path()))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, route.ErrInvalidRange),
		errors.Is(err, station.ErrNoPosition),
		errors.Is(err, lottery.ErrInvalidSession):
		return fiber.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, lottery.ErrPrizeNotFound),
		errors.Is(err, ticket.ErrTicketNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, lottery.ErrPrizeUsed),
		errors.Is(err, ticket.ErrNotReturnable):
		return fiber.StatusConflict
	case errors.Is(err, lottery.ErrPrizeExpired):
		return fiber.StatusGone
	case errors.Is(err, lottery.ErrCooldownActive):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}
