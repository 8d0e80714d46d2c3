package mocks

import (
	"context"
	"time"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

// MockStationRepository is a mock implementation of StationRepository
type MockStationRepository struct {
	SaveFunc                    func(ctx context.Context, station *domain.Station) error
	FindByIDFunc                func(ctx context.Context, id string) (*domain.Station, error)
	FindByPointIDFunc           func(ctx context.Context, pointID int64) (*domain.Station, error)
	FindAllFunc                 func(ctx context.Context) ([]domain.Station, error)
	FindNearbyFunc              func(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Station, error)
	UpdatePointAvailabilityFunc func(ctx context.Context, pointID int64, status domain.AvailabilityStatus) error
	CountFunc                   func(ctx context.Context) (int64, error)
}

func (m *MockStationRepository) Save(ctx context.Context, station *domain.Station) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, station)
	}
	return nil
}

func (m *MockStationRepository) FindByID(ctx context.Context, id string) (*domain.Station, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStationRepository) FindByPointID(ctx context.Context, pointID int64) (*domain.Station, error) {
	if m.FindByPointIDFunc != nil {
		return m.FindByPointIDFunc(ctx, pointID)
	}
	return nil, nil
}

func (m *MockStationRepository) FindAll(ctx context.Context) ([]domain.Station, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockStationRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Station, error) {
	if m.FindNearbyFunc != nil {
		return m.FindNearbyFunc(ctx, lat, lon, radiusKm)
	}
	return nil, nil
}

func (m *MockStationRepository) UpdatePointAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) error {
	if m.UpdatePointAvailabilityFunc != nil {
		return m.UpdatePointAvailabilityFunc(ctx, pointID, status)
	}
	return nil
}

func (m *MockStationRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockLotteryRepository is a mock implementation of LotteryRepository
type MockLotteryRepository struct {
	SavePrizeFunc           func(ctx context.Context, prize *domain.Prize) error
	FindPrizesBySessionFunc func(ctx context.Context, sessionID string) ([]domain.Prize, error)
	FindPrizeByIDFunc       func(ctx context.Context, id string) (*domain.Prize, error)
	MarkPrizeUsedFunc       func(ctx context.Context, id string) error
	FindDrawFunc            func(ctx context.Context, sessionID string) (*domain.Draw, error)
	UpsertDrawFunc          func(ctx context.Context, draw *domain.Draw) error
}

func (m *MockLotteryRepository) SavePrize(ctx context.Context, prize *domain.Prize) error {
	if m.SavePrizeFunc != nil {
		return m.SavePrizeFunc(ctx, prize)
	}
	return nil
}

func (m *MockLotteryRepository) FindPrizesBySession(ctx context.Context, sessionID string) ([]domain.Prize, error) {
	if m.FindPrizesBySessionFunc != nil {
		return m.FindPrizesBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockLotteryRepository) FindPrizeByID(ctx context.Context, id string) (*domain.Prize, error) {
	if m.FindPrizeByIDFunc != nil {
		return m.FindPrizeByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLotteryRepository) MarkPrizeUsed(ctx context.Context, id string) error {
	if m.MarkPrizeUsedFunc != nil {
		return m.MarkPrizeUsedFunc(ctx, id)
	}
	return nil
}

func (m *MockLotteryRepository) FindDraw(ctx context.Context, sessionID string) (*domain.Draw, error) {
	if m.FindDrawFunc != nil {
		return m.FindDrawFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockLotteryRepository) UpsertDraw(ctx context.Context, draw *domain.Draw) error {
	if m.UpsertDrawFunc != nil {
		return m.UpsertDrawFunc(ctx, draw)
	}
	return nil
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	SaveFunc             func(ctx context.Context, ticket *domain.Ticket) error
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Ticket, error)
	FindBySessionFunc    func(ctx context.Context, sessionID string, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	UpdateStatusFunc     func(ctx context.Context, id string, status domain.TicketStatus) error
	SaveDamageReportFunc func(ctx context.Context, report *domain.DamageReport) error
}

func (m *MockTicketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ticket)
	}
	return nil
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTicketRepository) FindBySession(ctx context.Context, sessionID string, statuses []domain.TicketStatus) ([]domain.Ticket, error) {
	if m.FindBySessionFunc != nil {
		return m.FindBySessionFunc(ctx, sessionID, statuses)
	}
	return nil, nil
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockTicketRepository) SaveDamageReport(ctx context.Context, report *domain.DamageReport) error {
	if m.SaveDamageReportFunc != nil {
		return m.SaveDamageReportFunc(ctx, report)
	}
	return nil
}

// MockHistoryRepository is a mock implementation of HistoryRepository
type MockHistoryRepository struct {
	SaveFunc               func(ctx context.Context, session *domain.ChargingSession) error
	FindBySessionFunc      func(ctx context.Context, sessionID string) ([]domain.ChargingSession, error)
	FindBySessionSinceFunc func(ctx context.Context, sessionID string, since time.Time) ([]domain.ChargingSession, error)
	DeleteFunc             func(ctx context.Context, sessionID, id string) error
	DeleteAllFunc          func(ctx context.Context, sessionID string) error
}

func (m *MockHistoryRepository) Save(ctx context.Context, session *domain.ChargingSession) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	return nil
}

func (m *MockHistoryRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ChargingSession, error) {
	if m.FindBySessionFunc != nil {
		return m.FindBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockHistoryRepository) FindBySessionSince(ctx context.Context, sessionID string, since time.Time) ([]domain.ChargingSession, error) {
	if m.FindBySessionSinceFunc != nil {
		return m.FindBySessionSinceFunc(ctx, sessionID, since)
	}
	return nil, nil
}

func (m *MockHistoryRepository) Delete(ctx context.Context, sessionID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID, id)
	}
	return nil
}

func (m *MockHistoryRepository) DeleteAll(ctx context.Context, sessionID string) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx, sessionID)
	}
	return nil
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	SaveFunc          func(ctx context.Context, sub *domain.Subscription) error
	DeleteFunc        func(ctx context.Context, sessionID, stationID string) error
	FindBySessionFunc func(ctx context.Context, sessionID string) ([]domain.Subscription, error)
	FindByStationFunc func(ctx context.Context, stationID string) ([]domain.Subscription, error)
}

func (m *MockSubscriptionRepository) Save(ctx context.Context, sub *domain.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *MockSubscriptionRepository) Delete(ctx context.Context, sessionID, stationID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID, stationID)
	}
	return nil
}

func (m *MockSubscriptionRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.Subscription, error) {
	if m.FindBySessionFunc != nil {
		return m.FindBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockSubscriptionRepository) FindByStation(ctx context.Context, stationID string) ([]domain.Subscription, error) {
	if m.FindByStationFunc != nil {
		return m.FindByStationFunc(ctx, stationID)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	SaveFunc        func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}
