package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type lotteryRepository struct {
	db *gorm.DB
}

func NewLotteryRepository(db *gorm.DB) ports.LotteryRepository {
	return &lotteryRepository{db: db}
}

func (r *lotteryRepository) SavePrize(ctx context.Context, prize *domain.Prize) error {
	return r.db.WithContext(ctx).Create(prize).Error
}

func (r *lotteryRepository) FindPrizesBySession(ctx context.Context, sessionID string) ([]domain.Prize, error) {
	var prizes []domain.Prize
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("won_at desc").
		Find(&prizes).Error
	return prizes, err
}

func (r *lotteryRepository) FindPrizeByID(ctx context.Context, id string) (*domain.Prize, error) {
	var prize domain.Prize
	err := r.db.WithContext(ctx).First(&prize, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prize, nil
}

func (r *lotteryRepository) MarkPrizeUsed(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Prize{}).
		Where("id = ?", id).
		Update("used", true).Error
}

func (r *lotteryRepository) FindDraw(ctx context.Context, sessionID string) (*domain.Draw, error) {
	var draw domain.Draw
	err := r.db.WithContext(ctx).First(&draw, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draw, nil
}

func (r *lotteryRepository) UpsertDraw(ctx context.Context, draw *domain.Draw) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"drawn_at", "prize_id"}),
		}).
		Create(draw).Error
}
