package account

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// Favorites live in the KV store under one set per session; charging history
// and availability subscriptions are relational.
const favoritesKeyPrefix = "favorites:"

type Service struct {
	cache   ports.Cache
	history ports.HistoryRepository
	subs    ports.SubscriptionRepository
	log     *zap.Logger
	now     func() time.Time
}

func NewService(cache ports.Cache, history ports.HistoryRepository, subs ports.SubscriptionRepository, log *zap.Logger) ports.AccountService {
	return &Service{
		cache:   cache,
		history: history,
		subs:    subs,
		log:     log,
		now:     time.Now,
	}
}

func favoritesKey(sessionID string) string {
	return favoritesKeyPrefix + sessionID
}

// Favorites returns the session's favorite station IDs, sorted for a stable
// response order.
func (s *Service) Favorites(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := s.cache.SetMembers(ctx, favoritesKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("reading favorites: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Service) AddFavorite(ctx context.Context, sessionID, stationID string) error {
	return s.cache.SetAdd(ctx, favoritesKey(sessionID), stationID)
}

func (s *Service) RemoveFavorite(ctx context.Context, sessionID, stationID string) error {
	return s.cache.SetRemove(ctx, favoritesKey(sessionID), stationID)
}

func (s *Service) History(ctx context.Context, sessionID string) ([]domain.ChargingSession, error) {
	return s.history.FindBySession(ctx, sessionID)
}

func (s *Service) AddHistory(ctx context.Context, session *domain.ChargingSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Date.IsZero() {
		session.Date = s.now()
	}
	session.CreatedAt = s.now()
	return s.history.Save(ctx, session)
}

func (s *Service) RemoveHistory(ctx context.Context, sessionID, id string) error {
	return s.history.Delete(ctx, sessionID, id)
}

func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.history.DeleteAll(ctx, sessionID)
}

func (s *Service) HistoryStats(ctx context.Context, sessionID string) (*domain.HistoryStats, error) {
	sessions, err := s.history.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return aggregate(sessions), nil
}

// MonthlyHistoryStats covers the 30 days up to now.
func (s *Service) MonthlyHistoryStats(ctx context.Context, sessionID string) (*domain.HistoryStats, error) {
	since := s.now().AddDate(0, 0, -30)
	sessions, err := s.history.FindBySessionSince(ctx, sessionID, since)
	if err != nil {
		return nil, err
	}
	return aggregate(sessions), nil
}

func (s *Service) Subscribe(ctx context.Context, sub *domain.Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.CreatedAt = s.now()
	if err := s.subs.Save(ctx, sub); err != nil {
		return fmt.Errorf("saving subscription: %w", err)
	}
	s.log.Info("Availability subscription added",
		zap.String("station_id", sub.StationID),
	)
	return nil
}

func (s *Service) Unsubscribe(ctx context.Context, sessionID, stationID string) error {
	return s.subs.Delete(ctx, sessionID, stationID)
}

func (s *Service) Subscriptions(ctx context.Context, sessionID string) ([]domain.Subscription, error) {
	return s.subs.FindBySession(ctx, sessionID)
}

func aggregate(sessions []domain.ChargingSession) *domain.HistoryStats {
	stats := &domain.HistoryStats{TotalSessions: len(sessions)}
	for _, cs := range sessions {
		stats.TotalCost += cs.Cost
		stats.TotalEnergy += cs.EnergyKWh
		stats.TotalDuration += cs.DurationMin
	}
	return stats
}
