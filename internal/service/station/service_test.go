package station_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/mocks"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/internal/service/station"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

func testStation(id string, lat, lng float64, availability domain.AvailabilityStatus) *domain.Station {
	s := &domain.Station{
		ID:        id,
		Name:      "Ładowarka " + id,
		Latitude:  lat,
		Longitude: lng,
		Operator:  domain.Operator{ShortName: "GreenWay"},
		Address:   domain.Address{City: "Łódź", Street: "Piotrkowska"},
		IsOpenNow: true,
		ChargingPoints: []domain.ChargingPoint{
			{ID: 1, StationID: id, PowerKW: 50, Availability: availability},
		},
	}
	s.Recompute()
	return s
}

func TestGetStation_CacheMissReadsRepository(t *testing.T) {
	want := testStation("st-1", 51.76, 19.45, domain.AvailabilityAvailable)
	repo := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Station, error) {
			assert.Equal(t, "st-1", id)
			return want, nil
		},
	}
	cache := mocks.NewMockCache()
	svc := station.NewService(repo, cache, mocks.NewMockMessageQueue(), zap.NewNop())

	got, err := svc.GetStation(context.Background(), "st-1")

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	// The read populated the cache.
	cached, err := cache.Get(context.Background(), "station:st-1")
	require.NoError(t, err)
	assert.Contains(t, cached, "st-1")
}

func TestGetStation_CacheHitSkipsRepository(t *testing.T) {
	cached, err := json.Marshal(testStation("st-1", 51.76, 19.45, domain.AvailabilityAvailable))
	require.NoError(t, err)

	repoCalled := false
	repo := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Station, error) {
			repoCalled = true
			return nil, nil
		},
	}
	cache := mocks.NewMockCache()
	require.NoError(t, cache.Set(context.Background(), "station:st-1", string(cached), 0))
	svc := station.NewService(repo, cache, mocks.NewMockMessageQueue(), zap.NewNop())

	got, err := svc.GetStation(context.Background(), "st-1")

	require.NoError(t, err)
	assert.Equal(t, "st-1", got.ID)
	assert.False(t, repoCalled)
}

func TestListStations_FiltersAndSorts(t *testing.T) {
	repo := &mocks.MockStationRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Station, error) {
			return []domain.Station{
				*testStation("busy", 51.76, 19.45, domain.AvailabilityOccupied),
				*testStation("free-far", 51.72, 19.50, domain.AvailabilityAvailable),
				*testStation("free-near", 51.759, 19.456, domain.AvailabilityAvailable),
			}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	out, err := svc.ListStations(context.Background(), ports.StationQuery{
		Availability: "available",
		SortBy:       station.SortByDistance,
		UserPosition: &geo.Coordinate{Latitude: 51.7592, Longitude: 19.4560},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "free-near", out[0].ID)
	assert.Equal(t, "free-far", out[1].ID)
}

func TestListStations_DistanceSortWithoutPosition(t *testing.T) {
	repo := &mocks.MockStationRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Station, error) {
			return []domain.Station{*testStation("a", 51.76, 19.45, domain.AvailabilityAvailable)}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	_, err := svc.ListStations(context.Background(), ports.StationQuery{SortBy: station.SortByDistance})

	assert.ErrorIs(t, err, station.ErrNoPosition)
}

func TestGetNearby_FormatsDistances(t *testing.T) {
	repo := &mocks.MockStationRepository{
		FindNearbyFunc: func(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Station, error) {
			assert.Equal(t, 5.0, radiusKm)
			return []domain.Station{*testStation("a", 51.7600, 19.4560, domain.AvailabilityAvailable)}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	out, err := svc.GetNearby(context.Background(), geo.Coordinate{Latitude: 51.7592, Longitude: 19.4560}, 5)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0].Distance)
}

func TestSearch_MatchesNameAndAddress(t *testing.T) {
	repo := &mocks.MockStationRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Station, error) {
			manufaktura := testStation("manu", 51.78, 19.44, domain.AvailabilityAvailable)
			manufaktura.Name = "Manufaktura Parking"
			manufaktura.Address.Street = "Drewnowska"
			return []domain.Station{
				*manufaktura,
				*testStation("other", 51.75, 19.46, domain.AvailabilityAvailable),
			}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	byName, err := svc.Search(context.Background(), "manufaktura")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "manu", byName[0].ID)

	byStreet, err := svc.Search(context.Background(), "drewnowska")
	require.NoError(t, err)
	require.Len(t, byStreet, 1)

	all, err := svc.Search(context.Background(), "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetStats(t *testing.T) {
	repo := &mocks.MockStationRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Station, error) {
			return []domain.Station{
				*testStation("a", 51.76, 19.45, domain.AvailabilityAvailable),
				*testStation("b", 51.75, 19.46, domain.AvailabilityOccupied),
			}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalStations)
	assert.Equal(t, 2, stats.TotalChargers)
	assert.Equal(t, 1, stats.AvailableChargers)
	assert.Equal(t, 50, stats.AvailabilityRate)
}

func TestGetPriceStats(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	repo := &mocks.MockStationRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Station, error) {
			cheap := testStation("cheap", 51.76, 19.45, domain.AvailabilityAvailable)
			cheap.ChargingPoints[0].PricePerKwh = price(1.0)
			cheap.Recompute()
			pricey := testStation("pricey", 51.75, 19.46, domain.AvailabilityAvailable)
			pricey.ChargingPoints[0].PricePerKwh = price(3.0)
			pricey.Recompute()
			return []domain.Station{
				*cheap,
				*pricey,
				*testStation("unpriced", 51.74, 19.47, domain.AvailabilityAvailable),
			}, nil
		},
	}
	svc := station.NewService(repo, mocks.NewMockCache(), mocks.NewMockMessageQueue(), zap.NewNop())

	stats, err := svc.GetPriceStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 3.0, stats.Max)
	assert.Equal(t, 2.0, stats.Avg)
}

func TestApplyAvailability_RecomputesAndPublishes(t *testing.T) {
	stored := testStation("st-1", 51.76, 19.45, domain.AvailabilityOccupied)

	var savedStation *domain.Station
	repo := &mocks.MockStationRepository{
		UpdatePointAvailabilityFunc: func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) error {
			assert.Equal(t, int64(1), pointID)
			stored.ChargingPoints[0].Availability = status
			return nil
		},
		FindByPointIDFunc: func(ctx context.Context, pointID int64) (*domain.Station, error) {
			return stored, nil
		},
		SaveFunc: func(ctx context.Context, s *domain.Station) error {
			savedStation = s
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	svc := station.NewService(repo, mocks.NewMockCache(), mq, zap.NewNop())

	got, err := svc.ApplyAvailability(context.Background(), 1, domain.AvailabilityAvailable)

	require.NoError(t, err)
	assert.Equal(t, 1, got.AvailableChargers)
	require.NotNil(t, savedStation)
	assert.Equal(t, 1, savedStation.AvailableChargers)

	published := mq.PublishedMessages[station.SubjectAvailability]
	require.Len(t, published, 1)
	var event station.AvailabilityEvent
	require.NoError(t, json.Unmarshal(published[0], &event))
	assert.Equal(t, "st-1", event.StationID)
	assert.Equal(t, domain.AvailabilityAvailable, event.Status)
}

func TestApplyAvailability_UnknownPoint(t *testing.T) {
	saveCalled := false
	repo := &mocks.MockStationRepository{
		FindByPointIDFunc: func(ctx context.Context, pointID int64) (*domain.Station, error) {
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, s *domain.Station) error {
			saveCalled = true
			return nil
		},
	}
	mq := mocks.NewMockMessageQueue()
	svc := station.NewService(repo, mocks.NewMockCache(), mq, zap.NewNop())

	got, err := svc.ApplyAvailability(context.Background(), 99999, domain.AvailabilityAvailable)

	require.ErrorIs(t, err, station.ErrUnknownPoint)
	assert.Nil(t, got)
	assert.False(t, saveCalled)
	assert.Empty(t, mq.PublishedMessages[station.SubjectAvailability])
}

func TestGetStation_MissDoesNotCacheNull(t *testing.T) {
	calls := 0
	repo := &mocks.MockStationRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Station, error) {
			calls++
			return nil, nil
		},
	}
	cache := mocks.NewMockCache()
	svc := station.NewService(repo, cache, mocks.NewMockMessageQueue(), zap.NewNop())

	got, err := svc.GetStation(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = cache.Get(context.Background(), "station:ghost")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)

	// A second lookup goes back to the repository and stays a miss.
	got, err = svc.GetStation(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 2, calls)
}
