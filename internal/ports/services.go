package ports

import (
	"context"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

// StationQuery are the filter criteria and sort order for catalog listings.
// All filter fields are optional and AND-combined.
type StationQuery struct {
	Availability    string // "", "all", "available", "occupied"
	PowerCategories []domain.PowerCategory
	ConnectorTypes  []string
	Operator        string // short name, or "" / "all" for no restriction
	MaxPrice        *float64
	OnlyOpen        bool
	SortBy          string // "", "distance", "availability", "price", "power"
	UserPosition    *geo.Coordinate
}

// StationStats summarizes the catalog for the dashboard header.
type StationStats struct {
	TotalStations     int `json:"total_stations"`
	TotalChargers     int `json:"total_chargers"`
	AvailableChargers int `json:"available_chargers"`
	AvailabilityRate  int `json:"availability_rate"`
}

// PriceStats summarizes known per-kWh prices across the catalog.
type PriceStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type StationService interface {
	GetStation(ctx context.Context, id string) (*domain.Station, error)
	ListStations(ctx context.Context, query StationQuery) ([]domain.Station, error)
	GetNearby(ctx context.Context, pos geo.Coordinate, radiusKm float64) ([]domain.Station, error)
	Search(ctx context.Context, text string) ([]domain.Station, error)
	GetStats(ctx context.Context) (*StationStats, error)
	GetPriceStats(ctx context.Context) (*PriceStats, error)
	ConnectorTypes(ctx context.Context) ([]string, error)
	Operators(ctx context.Context) ([]string, error)
	ApplyAvailability(ctx context.Context, pointID int64, status domain.AvailabilityStatus) (*domain.Station, error)
}

type RouteService interface {
	Plan(ctx context.Context, query domain.RouteQuery) (*domain.RoutePlan, error)
	Destinations() []domain.Destination
}

type LotteryService interface {
	Draw(ctx context.Context, sessionID string) (*domain.Prize, error)
	Prizes(ctx context.Context, sessionID string) ([]domain.Prize, error)
	UsePrize(ctx context.Context, sessionID, prizeID string) error
	Cooldown(ctx context.Context, sessionID string) (remainingMs int64, err error)
}

type TicketService interface {
	Tickets(ctx context.Context, sessionID string, active bool) ([]domain.Ticket, error)
	Return(ctx context.Context, sessionID, ticketID string) (*domain.Ticket, error)
	ReportDamage(ctx context.Context, report *domain.DamageReport) error
}

type AccountService interface {
	Favorites(ctx context.Context, sessionID string) ([]string, error)
	AddFavorite(ctx context.Context, sessionID, stationID string) error
	RemoveFavorite(ctx context.Context, sessionID, stationID string) error
	History(ctx context.Context, sessionID string) ([]domain.ChargingSession, error)
	AddHistory(ctx context.Context, session *domain.ChargingSession) error
	RemoveHistory(ctx context.Context, sessionID, id string) error
	ClearHistory(ctx context.Context, sessionID string) error
	HistoryStats(ctx context.Context, sessionID string) (*domain.HistoryStats, error)
	MonthlyHistoryStats(ctx context.Context, sessionID string) (*domain.HistoryStats, error)
	Subscribe(ctx context.Context, sub *domain.Subscription) error
	Unsubscribe(ctx context.Context, sessionID, stationID string) error
	Subscriptions(ctx context.Context, sessionID string) ([]domain.Subscription, error)
}

// AlertService notifies subscribers when a station they watch becomes
// available again.
type AlertService interface {
	StationAvailable(ctx context.Context, station *domain.Station) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
	Register(ctx context.Context, user *domain.User, plainPassword string) error
}

// RefundProvider reverses a charge at the payment provider. Returns the
// provider's refund ID.
type RefundProvider interface {
	Refund(ctx context.Context, paymentID string, amount float64) (string, error)
}

// EmailProvider sends a single message. Implementations wrap SendGrid or
// plain SMTP.
type EmailProvider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// RegistryClient pulls point availability from the external EIPA registry.
type RegistryClient interface {
	FetchAvailability(ctx context.Context) ([]PointAvailability, error)
}

// PointAvailability is one registry reading for a charging point.
type PointAvailability struct {
	PointID int64                     `json:"point_id"`
	Status  domain.AvailabilityStatus `json:"status"`
}
