package mocks

import (
	"context"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

// MockRefundProvider is a mock implementation of RefundProvider
type MockRefundProvider struct {
	Refunded   []RefundCall
	RefundFunc func(ctx context.Context, paymentID string, amount float64) (string, error)
}

// RefundCall records one captured Refund call.
type RefundCall struct {
	PaymentID string
	Amount    float64
}

func (m *MockRefundProvider) Refund(ctx context.Context, paymentID string, amount float64) (string, error) {
	if m.RefundFunc != nil {
		return m.RefundFunc(ctx, paymentID, amount)
	}
	m.Refunded = append(m.Refunded, RefundCall{PaymentID: paymentID, Amount: amount})
	return "re_mock", nil
}

// MockEmailProvider is a mock implementation of EmailProvider
type MockEmailProvider struct {
	Sent     []SentEmail
	SendFunc func(ctx context.Context, to, subject, body string, isHTML bool) error
}

// SentEmail records one captured Send call.
type SentEmail struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

func (m *MockEmailProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body, isHTML)
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body, IsHTML: isHTML})
	return nil
}

// MockRegistryClient is a mock implementation of RegistryClient
type MockRegistryClient struct {
	FetchAvailabilityFunc func(ctx context.Context) ([]ports.PointAvailability, error)
}

func (m *MockRegistryClient) FetchAvailability(ctx context.Context) ([]ports.PointAvailability, error) {
	if m.FetchAvailabilityFunc != nil {
		return m.FetchAvailabilityFunc(ctx)
	}
	return nil, nil
}

// MockAlertService is a mock implementation of AlertService
type MockAlertService struct {
	Notified             []string
	StationAvailableFunc func(ctx context.Context, station *domain.Station) error
}

func (m *MockAlertService) StationAvailable(ctx context.Context, station *domain.Station) error {
	if m.StationAvailableFunc != nil {
		return m.StationAvailableFunc(ctx, station)
	}
	m.Notified = append(m.Notified, station.ID)
	return nil
}

// MockStationService is a mock implementation of StationService
type MockStationService struct {
	GetStationFunc        func(ctx context.Context, id string) (*domain.Station, error)
	ListStationsFunc      func(ctx context.Context, query ports.StationQuery) ([]domain.Station, error)
	GetNearbyFunc         func(ctx context.Context, pos geo.Coordinate, radiusKm float64) ([]domain.Station, error)
	SearchFunc            func(ctx context.Context, text string) ([]domain.Station, error)
	GetStatsFunc          func(ctx context.Context) (*ports.StationStats, error)
	GetPriceStatsFunc     func(ctx context.Context) (*ports.PriceStats, error)
	ConnectorTypesFunc    func(ctx context.Context) ([]string, error)
	OperatorsFunc         func(ctx context.Context) ([]string, error)
	ApplyAvailabilityFunc func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error)
}

func (m *MockStationService) GetStation(ctx context.Context, id string) (*domain.Station, error) {
	if m.GetStationFunc != nil {
		return m.GetStationFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStationService) ListStations(ctx context.Context, query ports.StationQuery) ([]domain.Station, error) {
	if m.ListStationsFunc != nil {
		return m.ListStationsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockStationService) GetNearby(ctx context.Context, pos geo.Coordinate, radiusKm float64) ([]domain.Station, error) {
	if m.GetNearbyFunc != nil {
		return m.GetNearbyFunc(ctx, pos, radiusKm)
	}
	return nil, nil
}

func (m *MockStationService) Search(ctx context.Context, text string) ([]domain.Station, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, text)
	}
	return nil, nil
}

func (m *MockStationService) GetStats(ctx context.Context) (*ports.StationStats, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStationService) GetPriceStats(ctx context.Context) (*ports.PriceStats, error) {
	if m.GetPriceStatsFunc != nil {
		return m.GetPriceStatsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStationService) ConnectorTypes(ctx context.Context) ([]string, error) {
	if m.ConnectorTypesFunc != nil {
		return m.ConnectorTypesFunc(ctx)
	}
	return nil, nil
}

func (m *MockStationService) Operators(ctx context.Context) ([]string, error) {
	if m.OperatorsFunc != nil {
		return m.OperatorsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStationService) ApplyAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error) {
	if m.ApplyAvailabilityFunc != nil {
		return m.ApplyAvailabilityFunc(ctx, pointID, status)
	}
	return nil, nil
}
