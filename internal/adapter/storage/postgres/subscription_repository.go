package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ports.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Save(ctx context.Context, sub *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, sessionID, stationID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND station_id = ?", sessionID, stationID).
		Delete(&domain.Subscription{}).Error
}

func (r *subscriptionRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at desc").
		Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindByStation(ctx context.Context, stationID string) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := r.db.WithContext(ctx).
		Where("station_id = ?", stationID).
		Find(&subs).Error
	return subs, err
}
