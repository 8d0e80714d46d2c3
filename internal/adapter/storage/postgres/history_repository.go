package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) ports.HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Save(ctx context.Context, session *domain.ChargingSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *historyRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ChargingSession, error) {
	var sessions []domain.ChargingSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("date desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *historyRepository) FindBySessionSince(ctx context.Context, sessionID string, since time.Time) ([]domain.ChargingSession, error) {
	var sessions []domain.ChargingSession
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND date >= ?", sessionID, since).
		Order("date desc").
		Find(&sessions).Error
	return sessions, err
}

func (r *historyRepository) Delete(ctx context.Context, sessionID, id string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND id = ?", sessionID, id).
		Delete(&domain.ChargingSession{}).Error
}

func (r *historyRepository) DeleteAll(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&domain.ChargingSession{}).Error
}
