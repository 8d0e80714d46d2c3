package route

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

// ErrInvalidRange rejects planning sessions with a non-positive battery range.
var ErrInvalidRange = errors.New("battery range must be positive")

type Service struct {
	repo ports.StationRepository
	log  *zap.Logger
}

func NewService(repo ports.StationRepository, log *zap.Logger) ports.RouteService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Plan computes the corridor and recommended charging stops for one query.
// The result is derived fresh from the current catalog; nothing is cached
// across queries.
func (s *Service) Plan(ctx context.Context, query domain.RouteQuery) (*domain.RoutePlan, error) {
	if query.BatteryRangeKm <= 0 {
		return nil, ErrInvalidRange
	}

	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	corridor := CorridorStations(query.Start, query.Destination, catalog)
	stops, feasible := PlanStops(corridor, query.BatteryRangeKm)

	telemetry.RoutePlansTotal.Inc()
	telemetry.CorridorSize.Observe(float64(len(corridor)))

	if !feasible {
		s.log.Warn("Route not completable at requested range",
			zap.Float64("range_km", query.BatteryRangeKm),
			zap.Int("corridor_stations", len(corridor)),
			zap.Int("stops_planned", len(stops)),
		)
	}

	return &domain.RoutePlan{
		Query:            query,
		TotalDistanceKm:  geo.DistanceKm(query.Start, query.Destination),
		CorridorStations: corridor,
		RecommendedStops: stops,
		Feasible:         feasible,
	}, nil
}

// Destinations returns the static list of named route targets.
func (s *Service) Destinations() []domain.Destination {
	return predefinedDestinations
}
