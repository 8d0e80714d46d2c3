package station

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/adapter/queue"
	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

const (
	stationCacheTTL = time.Minute

	// SubjectAvailability is the queue subject for availability change events.
	SubjectAvailability = "stations.availability"
)

// ErrUnknownPoint is returned when an availability reading names a charging
// point that is not in the catalog.
var ErrUnknownPoint = errors.New("charging point not found in catalog")

// AvailabilityEvent is published on SubjectAvailability after every applied
// point availability change.
type AvailabilityEvent struct {
	StationID         string                    `json:"station_id"`
	PointID           int64                     `json:"point_id"`
	Status            domain.AvailabilityStatus `json:"status"`
	AvailableChargers int                       `json:"available_chargers"`
	TotalChargers     int                       `json:"total_chargers"`
}

type Service struct {
	repo  ports.StationRepository
	cache ports.Cache
	mq    queue.MessageQueue
	log   *zap.Logger
}

func NewService(repo ports.StationRepository, cache ports.Cache, mq queue.MessageQueue, log *zap.Logger) ports.StationService {
	return &Service{
		repo:  repo,
		cache: cache,
		mq:    mq,
		log:   log,
	}
}

func (s *Service) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	cacheKey := "station:" + id
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var station domain.Station
		if err := json.Unmarshal([]byte(cached), &station); err == nil && station.ID != "" {
			return &station, nil
		}
	}

	station, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		// Misses are not cached; a station created moments later must be
		// visible on the next lookup.
		return nil, nil
	}

	if data, err := json.Marshal(station); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), stationCacheTTL); err != nil {
			s.log.Debug("Station cache write failed", zap.String("station_id", id), zap.Error(err))
		}
	}

	return station, nil
}

// ListStations applies the query's filters and sort order over the full
// catalog.
func (s *Service) ListStations(ctx context.Context, query ports.StationQuery) ([]domain.Station, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterStations(catalog, query)
	return SortStations(filtered, query.SortBy, query.UserPosition)
}

// GetNearby returns stations within radiusKm of pos, closest first, with the
// transient Distance field formatted relative to pos.
func (s *Service) GetNearby(ctx context.Context, pos geo.Coordinate, radiusKm float64) ([]domain.Station, error) {
	stations, err := s.repo.FindNearby(ctx, pos.Latitude, pos.Longitude, radiusKm)
	if err != nil {
		return nil, err
	}
	return SortStations(stations, SortByDistance, &pos)
}

// Search matches text case-insensitively against station names, addresses
// and operator names.
func (s *Service) Search(ctx context.Context, text string) ([]domain.Station, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return catalog, nil
	}

	out := make([]domain.Station, 0)
	for _, station := range catalog {
		haystack := strings.ToLower(strings.Join([]string{
			station.Name,
			station.Address.Full,
			station.Address.Street,
			station.Address.City,
			station.Operator.Name,
			station.Operator.ShortName,
		}, " "))
		if strings.Contains(haystack, needle) {
			out = append(out, station)
		}
	}
	return out, nil
}

func (s *Service) GetStats(ctx context.Context) (*ports.StationStats, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.StationStats{TotalStations: len(catalog)}
	for _, station := range catalog {
		stats.TotalChargers += station.TotalChargers
		stats.AvailableChargers += station.AvailableChargers
	}
	if stats.TotalChargers > 0 {
		stats.AvailabilityRate = stats.AvailableChargers * 100 / stats.TotalChargers
	}
	return stats, nil
}

func (s *Service) GetPriceStats(ctx context.Context) (*ports.PriceStats, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ports.PriceStats{}
	var sum float64
	var priced int
	for _, station := range catalog {
		if station.AvgPricePerKwh == nil {
			continue
		}
		price := *station.AvgPricePerKwh
		if priced == 0 || price < stats.Min {
			stats.Min = price
		}
		if price > stats.Max {
			stats.Max = price
		}
		sum += price
		priced++
	}
	if priced > 0 {
		stats.Avg = sum / float64(priced)
	}
	return stats, nil
}

// ConnectorTypes lists the distinct connector types present in the catalog,
// sorted alphabetically.
func (s *Service) ConnectorTypes(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, station := range catalog {
		for _, point := range station.ChargingPoints {
			for _, connector := range point.Connectors {
				seen[connector.Type] = struct{}{}
			}
		}
	}
	return sortedKeys(seen), nil
}

// Operators lists the distinct operator short names in the catalog, sorted
// alphabetically.
func (s *Service) Operators(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, station := range catalog {
		if station.Operator.ShortName != "" {
			seen[station.Operator.ShortName] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// ApplyAvailability records a point availability change, refreshes the
// owning station's derived counters, invalidates its cache entry and
// publishes an availability event. The refreshed station is returned so
// callers can fan out notifications.
func (s *Service) ApplyAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
	if err := s.repo.UpdatePointAvailability(ctx, pointID, status); err != nil {
		return nil, err
	}

	station, err := s.repo.FindByPointID(ctx, pointID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		// The registry covers the whole country; readings for points outside
		// the catalog are expected and must not kill the poll cycle.
		return nil, ErrUnknownPoint
	}

	station.Recompute()
	if err := s.repo.Save(ctx, station); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, "station:"+station.ID); err != nil {
		s.log.Debug("Station cache invalidation failed", zap.String("station_id", station.ID), zap.Error(err))
	}

	event := AvailabilityEvent{
		StationID:         station.ID,
		PointID:           pointID,
		Status:            status,
		AvailableChargers: station.AvailableChargers,
		TotalChargers:     station.TotalChargers,
	}
	if data, err := json.Marshal(event); err == nil {
		if err := s.mq.Publish(SubjectAvailability, data); err != nil {
			s.log.Warn("Availability event publish failed",
				zap.String("station_id", station.ID),
				zap.Int64("point_id", pointID),
				zap.Error(err),
			)
		}
	}

	return station, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
