package alert

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// Service mails availability alerts to subscribers. Alerts are one-shot: a
// delivered subscription is removed so the next occupied->available flip does
// not mail the same user again.
type Service struct {
	subs     ports.SubscriptionRepository
	provider ports.EmailProvider
	log      *zap.Logger
	tmpl     *template.Template
}

func NewService(subs ports.SubscriptionRepository, provider ports.EmailProvider, log *zap.Logger) ports.AlertService {
	return &Service{
		subs:     subs,
		provider: provider,
		log:      log,
		tmpl:     template.Must(template.New("alert").Parse(alertTemplate)),
	}
}

// StationAvailable fans an alert out to everyone subscribed to the station.
// Individual delivery failures are logged and skipped; the subscription stays
// in place so a later flip retries it.
func (s *Service) StationAvailable(ctx context.Context, station *domain.Station) error {
	if station.AvailableChargers == 0 {
		return nil
	}

	subscriptions, err := s.subs.FindByStation(ctx, station.ID)
	if err != nil {
		return fmt.Errorf("loading subscriptions: %w", err)
	}

	for _, sub := range subscriptions {
		body, err := s.render(station)
		if err != nil {
			return fmt.Errorf("rendering alert: %w", err)
		}

		subject := fmt.Sprintf("Ładowarka %s jest już dostępna", station.Name)
		if err := s.provider.Send(ctx, sub.Email, subject, body, true); err != nil {
			s.log.Warn("Availability alert delivery failed",
				zap.String("station_id", station.ID),
				zap.String("subscription_id", sub.ID),
				zap.Error(err),
			)
			continue
		}

		telemetry.AvailabilityAlertsTotal.Inc()
		if err := s.subs.Delete(ctx, sub.SessionID, sub.StationID); err != nil {
			s.log.Warn("Delivered subscription cleanup failed",
				zap.String("subscription_id", sub.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

type alertData struct {
	StationName       string
	Address           string
	AvailableChargers int
	TotalChargers     int
	MaxPower          float64
}

func (s *Service) render(station *domain.Station) (string, error) {
	var buf bytes.Buffer
	err := s.tmpl.Execute(&buf, alertData{
		StationName:       station.Name,
		Address:           station.Address.Full,
		AvailableChargers: station.AvailableChargers,
		TotalChargers:     station.TotalChargers,
		MaxPower:          station.MaxPower,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
