package postgres

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

// NewConnection opens a pooled GORM connection to PostgreSQL.
func NewConnection(url string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations creates or updates the schema for every persisted model.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Station{},
		&domain.ChargingPoint{},
		&domain.Prize{},
		&domain.Draw{},
		&domain.Ticket{},
		&domain.DamageReport{},
		&domain.ChargingSession{},
		&domain.Subscription{},
		&domain.User{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
