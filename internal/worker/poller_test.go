package worker

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/mocks"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/internal/service/station"
)

func TestRefresh_AppliesOnlyChangedReadings(t *testing.T) {
	readings := []ports.PointAvailability{
		{PointID: 1, Status: domain.AvailabilityAvailable},
		{PointID: 2, Status: domain.AvailabilityOccupied},
	}

	var applied []int64
	stations := &mocks.MockStationService{
		ApplyAvailabilityFunc: func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
			applied = append(applied, pointID)
			return &domain.Station{ID: "lodz-001"}, nil
		},
	}
	registry := &mocks.MockRegistryClient{
		FetchAvailabilityFunc: func(ctx context.Context) ([]ports.PointAvailability, error) {
			return readings, nil
		},
	}

	p := NewPoller(registry, stations, &mocks.MockAlertService{}, 0, zap.NewNop())

	p.refresh(context.Background())
	if len(applied) != 2 {
		t.Fatalf("expected 2 applied changes, got %d", len(applied))
	}

	// Same readings again: nothing changed, nothing applied.
	applied = nil
	p.refresh(context.Background())
	if len(applied) != 0 {
		t.Fatalf("expected no applied changes on identical readings, got %d", len(applied))
	}
}

func TestRefresh_AlertsWhenPointBecomesAvailable(t *testing.T) {
	status := domain.AvailabilityOccupied
	registry := &mocks.MockRegistryClient{
		FetchAvailabilityFunc: func(ctx context.Context) ([]ports.PointAvailability, error) {
			return []ports.PointAvailability{{PointID: 7, Status: status}}, nil
		},
	}
	stations := &mocks.MockStationService{
		ApplyAvailabilityFunc: func(ctx context.Context, pointID int64, s domain.AvailabilityStatus) (*domain.Station, error) {
			return &domain.Station{ID: "lodz-002", AvailableChargers: 1}, nil
		},
	}

	var alerted []string
	alerts := &mocks.MockAlertService{
		StationAvailableFunc: func(ctx context.Context, station *domain.Station) error {
			alerted = append(alerted, station.ID)
			return nil
		},
	}

	p := NewPoller(registry, stations, alerts, 0, zap.NewNop())

	// First sighting is occupied: no alert.
	p.refresh(context.Background())
	if len(alerted) != 0 {
		t.Fatalf("expected no alert on first sighting, got %d", len(alerted))
	}

	// The point frees up: subscribers get alerted.
	status = domain.AvailabilityAvailable
	p.refresh(context.Background())
	if len(alerted) != 1 || alerted[0] != "lodz-002" {
		t.Fatalf("expected one alert for lodz-002, got %v", alerted)
	}

	// Going occupied again must not alert.
	status = domain.AvailabilityOccupied
	p.refresh(context.Background())
	if len(alerted) != 1 {
		t.Fatalf("expected no alert on occupied transition, got %d", len(alerted))
	}
}

func TestRefresh_RegistryFailureKeepsState(t *testing.T) {
	registry := &mocks.MockRegistryClient{
		FetchAvailabilityFunc: func(ctx context.Context) ([]ports.PointAvailability, error) {
			return nil, errors.New("registry down")
		},
	}
	stations := &mocks.MockStationService{
		ApplyAvailabilityFunc: func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
			t.Fatal("ApplyAvailability must not be called when the registry fails")
			return nil, nil
		},
	}

	p := NewPoller(registry, stations, &mocks.MockAlertService{}, 0, zap.NewNop())
	p.refresh(context.Background())
}

func TestRefresh_ApplyFailureDoesNotMarkKnown(t *testing.T) {
	fail := true
	var applied int
	registry := &mocks.MockRegistryClient{
		FetchAvailabilityFunc: func(ctx context.Context) ([]ports.PointAvailability, error) {
			return []ports.PointAvailability{{PointID: 9, Status: domain.AvailabilityAvailable}}, nil
		},
	}
	stations := &mocks.MockStationService{
		ApplyAvailabilityFunc: func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
			applied++
			if fail {
				return nil, errors.New("db down")
			}
			return &domain.Station{ID: "lodz-003"}, nil
		},
	}

	p := NewPoller(registry, stations, &mocks.MockAlertService{}, 0, zap.NewNop())

	p.refresh(context.Background())
	if applied != 1 {
		t.Fatalf("expected one apply attempt, got %d", applied)
	}

	// The change was not recorded, so the next cycle retries it.
	fail = false
	p.refresh(context.Background())
	if applied != 2 {
		t.Fatalf("expected retry after failed apply, got %d attempts", applied)
	}
}

func TestRefresh_UnknownPointRecordedWithoutRetry(t *testing.T) {
	var applied int
	registry := &mocks.MockRegistryClient{
		FetchAvailabilityFunc: func(ctx context.Context) ([]ports.PointAvailability, error) {
			return []ports.PointAvailability{{PointID: 99999, Status: domain.AvailabilityAvailable}}, nil
		},
	}
	stations := &mocks.MockStationService{
		ApplyAvailabilityFunc: func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
			applied++
			return nil, station.ErrUnknownPoint
		},
	}

	var alerted int
	alerts := &mocks.MockAlertService{
		StationAvailableFunc: func(ctx context.Context, st *domain.Station) error {
			alerted++
			return nil
		},
	}

	p := NewPoller(registry, stations, alerts, 0, zap.NewNop())

	p.refresh(context.Background())
	if applied != 1 {
		t.Fatalf("expected one apply attempt, got %d", applied)
	}
	if alerted != 0 {
		t.Fatalf("expected no alerts for an uncatalogued point, got %d", alerted)
	}

	// The reading is remembered; an identical cycle does not re-apply it.
	p.refresh(context.Background())
	if applied != 1 {
		t.Fatalf("expected no retry for an uncatalogued point, got %d attempts", applied)
	}
}
