package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) ports.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) FindBySession(ctx context.Context, sessionID string, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	query := r.db.WithContext(ctx).Where("session_id = ?", sessionID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("date desc").Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Ticket{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ticketRepository) SaveDamageReport(ctx context.Context, report *domain.DamageReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}
