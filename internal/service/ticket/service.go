package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrNotReturnable  = errors.New("ticket cannot be returned")
)

type Service struct {
	repo    ports.TicketRepository
	refunds ports.RefundProvider
	log     *zap.Logger
	now     func() time.Time
}

func NewService(repo ports.TicketRepository, refunds ports.RefundProvider, log *zap.Logger) ports.TicketService {
	return &Service{
		repo:    repo,
		refunds: refunds,
		log:     log,
		now:     time.Now,
	}
}

// Tickets lists the session's tickets: active ones, or the history of used,
// expired and returned ones.
func (s *Service) Tickets(ctx context.Context, sessionID string, active bool) ([]domain.Ticket, error) {
	statuses := []domain.TicketStatus{domain.TicketStatusActive}
	if !active {
		statuses = []domain.TicketStatus{
			domain.TicketStatusUsed,
			domain.TicketStatusExpired,
			domain.TicketStatusReturned,
		}
	}
	return s.repo.FindBySession(ctx, sessionID, statuses)
}

// Return marks an active ticket as returned and refunds its payment. The
// refund runs before the status flips so a provider failure leaves the
// ticket untouched.
func (s *Service) Return(ctx context.Context, sessionID, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("loading ticket: %w", err)
	}
	if ticket == nil || ticket.SessionID != sessionID {
		return nil, ErrTicketNotFound
	}
	if !ticket.Returnable(s.now()) {
		return nil, ErrNotReturnable
	}

	if ticket.PaymentID != "" {
		refundID, err := s.refunds.Refund(ctx, ticket.PaymentID, ticket.Price)
		if err != nil {
			return nil, fmt.Errorf("refunding ticket %s: %w", ticketID, err)
		}
		s.log.Info("Ticket refunded",
			zap.String("ticket_id", ticketID),
			zap.String("refund_id", refundID),
			zap.Float64("amount", ticket.Price),
		)
	}

	if err := s.repo.UpdateStatus(ctx, ticketID, domain.TicketStatusReturned); err != nil {
		return nil, fmt.Errorf("marking ticket returned: %w", err)
	}

	ticket.Status = domain.TicketStatusReturned
	return ticket, nil
}

// ReportDamage stores a problem report for a ticket the session holds.
func (s *Service) ReportDamage(ctx context.Context, report *domain.DamageReport) error {
	ticket, err := s.repo.FindByID(ctx, report.TicketID)
	if err != nil {
		return fmt.Errorf("loading ticket: %w", err)
	}
	if ticket == nil || ticket.SessionID != report.SessionID {
		return ErrTicketNotFound
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	report.CreatedAt = s.now()

	return s.repo.SaveDamageReport(ctx, report)
}
