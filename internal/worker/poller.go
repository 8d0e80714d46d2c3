package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/internal/service/station"
)

// Poller periodically pulls point availability from the EIPA registry and
// applies changed readings to the catalog. When a station gains a free
// charger, subscribers are alerted.
type Poller struct {
	registry ports.RegistryClient
	stations ports.StationService
	alerts   ports.AlertService
	interval time.Duration
	log      *zap.Logger

	// last known status per point, used to apply only actual changes
	known map[int64]domain.AvailabilityStatus
}

func NewPoller(registry ports.RegistryClient, stations ports.StationService, alerts ports.AlertService, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		registry: registry,
		stations: stations,
		alerts:   alerts,
		interval: interval,
		log:      log,
		known:    make(map[int64]domain.AvailabilityStatus),
	}
}

// Run polls until the context is cancelled. One refresh runs immediately on
// start so the catalog is fresh after deploys.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Info("availability poller stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	readings, err := p.registry.FetchAvailability(ctx)
	if err != nil {
		telemetry.AvailabilityRefreshesTotal.WithLabelValues("error").Inc()
		p.log.Warn("registry fetch failed, keeping last known state", zap.Error(err))
		return
	}

	changed := 0
	for _, reading := range readings {
		previous, seen := p.known[reading.PointID]
		if seen && previous == reading.Status {
			continue
		}

		st, err := p.stations.ApplyAvailability(ctx, reading.PointID, reading.Status)
		if errors.Is(err, station.ErrUnknownPoint) {
			// The registry reports points the catalog does not carry; remember
			// the status so the reading is not re-applied every cycle.
			p.known[reading.PointID] = reading.Status
			continue
		}
		if err != nil {
			p.log.Error("failed to apply availability change",
				zap.Int64("point_id", reading.PointID),
				zap.Error(err),
			)
			continue
		}
		p.known[reading.PointID] = reading.Status
		changed++

		if st == nil {
			continue
		}

		// A point freeing up can flip the whole station to available; that is
		// the moment subscribers asked to hear about.
		if seen && previous != domain.AvailabilityAvailable && reading.Status == domain.AvailabilityAvailable {
			if err := p.alerts.StationAvailable(ctx, st); err != nil {
				p.log.Error("failed to send availability alerts",
					zap.String("station_id", st.ID),
					zap.Error(err),
				)
			}
		}
	}

	telemetry.AvailabilityRefreshesTotal.WithLabelValues("ok").Inc()
	if changed > 0 {
		p.log.Info("applied availability changes",
			zap.Int("changed", changed),
			zap.Int("readings", len(readings)),
		)
	}
}
