package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

type stationRepository struct {
	db *gorm.DB
}

func NewStationRepository(db *gorm.DB) ports.StationRepository {
	return &stationRepository{db: db}
}

func (r *stationRepository) Save(ctx context.Context, station *domain.Station) error {
	start := time.Now()
	defer func() {
		telemetry.DatabaseLatency.WithLabelValues("station_save").Observe(time.Since(start).Seconds())
	}()

	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(station).Error
}

func (r *stationRepository) FindByID(ctx context.Context, id string) (*domain.Station, error) {
	var station domain.Station
	err := r.db.WithContext(ctx).
		Preload("ChargingPoints").
		First(&station, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *stationRepository) FindByPointID(ctx context.Context, pointID int64) (*domain.Station, error) {
	var point domain.ChargingPoint
	err := r.db.WithContext(ctx).First(&point, "id = ?", pointID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, point.StationID)
}

func (r *stationRepository) FindAll(ctx context.Context) ([]domain.Station, error) {
	start := time.Now()
	defer func() {
		telemetry.DatabaseLatency.WithLabelValues("station_find_all").Observe(time.Since(start).Seconds())
	}()

	var stations []domain.Station
	err := r.db.WithContext(ctx).
		Preload("ChargingPoints").
		Order("name asc").
		Find(&stations).Error
	return stations, err
}

// FindNearby runs the haversine formula in SQL so the database prunes the
// candidate set, then reloads the matches with their charging points while
// preserving the distance order.
func (r *stationRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Station, error) {
	start := time.Now()
	defer func() {
		telemetry.DatabaseLatency.WithLabelValues("station_find_nearby").Observe(time.Since(start).Seconds())
	}()

	haversine := `6371 * 2 * ASIN(SQRT(
		POWER(SIN(RADIANS(latitude - ?) / 2), 2) +
		COS(RADIANS(?)) * COS(RADIANS(latitude)) *
		POWER(SIN(RADIANS(longitude - ?) / 2), 2)
	))`

	var ids []string
	err := r.db.WithContext(ctx).
		Raw("SELECT id FROM stations WHERE "+haversine+" <= ? ORDER BY "+haversine+" LIMIT 50",
			lat, lat, lon, radiusKm, lat, lat, lon).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.Station{}, nil
	}

	var stations []domain.Station
	if err := r.db.WithContext(ctx).
		Preload("ChargingPoints").
		Find(&stations, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Station, len(stations))
	for _, s := range stations {
		byID[s.ID] = s
	}
	ordered := make([]domain.Station, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

func (r *stationRepository) UpdatePointAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.ChargingPoint{}).
		Where("id = ?", pointID).
		Updates(map[string]interface{}{
			"availability": status,
			"last_update":  time.Now(),
		}).Error
}

func (r *stationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Station{}).Count(&count).Error
	return count, err
}
