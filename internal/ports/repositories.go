package ports

import (
	"context"
	"time"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

type StationRepository interface {
	Save(ctx context.Context, station *domain.Station) error
	FindByID(ctx context.Context, id string) (*domain.Station, error)
	FindByPointID(ctx context.Context, pointID int64) (*domain.Station, error)
	FindAll(ctx context.Context) ([]domain.Station, error)
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Station, error)
	UpdatePointAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) error
	Count(ctx context.Context) (int64, error)
}

type LotteryRepository interface {
	SavePrize(ctx context.Context, prize *domain.Prize) error
	FindPrizesBySession(ctx context.Context, sessionID string) ([]domain.Prize, error)
	FindPrizeByID(ctx context.Context, id string) (*domain.Prize, error)
	MarkPrizeUsed(ctx context.Context, id string) error
	FindDraw(ctx context.Context, sessionID string) (*domain.Draw, error)
	UpsertDraw(ctx context.Context, draw *domain.Draw) error
}

type TicketRepository interface {
	Save(ctx context.Context, ticket *domain.Ticket) error
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	FindBySession(ctx context.Context, sessionID string, statuses []domain.TicketStatus) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	SaveDamageReport(ctx context.Context, report *domain.DamageReport) error
}

type HistoryRepository interface {
	Save(ctx context.Context, session *domain.ChargingSession) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.ChargingSession, error)
	FindBySessionSince(ctx context.Context, sessionID string, since time.Time) ([]domain.ChargingSession, error)
	Delete(ctx context.Context, sessionID, id string) error
	DeleteAll(ctx context.Context, sessionID string) error
}

type SubscriptionRepository interface {
	Save(ctx context.Context, sub *domain.Subscription) error
	Delete(ctx context.Context, sessionID, stationID string) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.Subscription, error)
	FindByStation(ctx context.Context, stationID string) ([]domain.Subscription, error)
}

type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
