package route

import (
	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

const (
	// dischargeMargin is the depth-of-discharge margin: the vehicle must stop
	// before consuming more than 70% of the range gained at the last charge.
	dischargeMargin = 0.7
	// fastChargeKW is the minimum point power for the fallback recommendation.
	fastChargeKW = 50
	// maxFallbackStops caps the nice-to-have recommendation when no stop is
	// structurally required.
	maxFallbackStops = 2
)

// PlanStops greedily selects the minimal charging stops needed to cover the
// corridor with the given battery range. The corridor must already be sorted
// ascending by DistanceFromStart.
//
// Whenever the gap to the next corridor entry exceeds 70% of the current
// range, the furthest station still within that margin is chosen and a full
// recharge is assumed. If no stop is forced at all, up to two fast-charging
// (>=50 kW) corridor stations are returned instead as a recommendation.
//
// The second return value is false when a mandatory stop had no reachable
// candidate: the route cannot be completed at this range and the returned
// stops are truncated at the last reachable station.
func PlanStops(corridor []domain.RouteStationEntry, rangeKm float64) ([]domain.RouteStationEntry, bool) {
	if len(corridor) == 0 {
		return []domain.RouteStationEntry{}, true
	}

	safeLeg := rangeKm * dischargeMargin
	stops := make([]domain.RouteStationEntry, 0)
	currentPosition := 0.0

	for _, entry := range corridor {
		gap := entry.DistanceFromStart - currentPosition
		if gap <= safeLeg {
			continue
		}

		// Furthest viable station within the margin maximizes progress per stop.
		idx := -1
		for i, candidate := range corridor {
			if candidate.DistanceFromStart <= currentPosition {
				continue
			}
			if candidate.DistanceFromStart > currentPosition+safeLeg {
				break
			}
			idx = i
		}

		if idx < 0 {
			// Progress stalls: nothing reachable before the battery margin
			// runs out. The plan is truncated here.
			return stops, false
		}

		stops = append(stops, corridor[idx])
		currentPosition = corridor[idx].DistanceFromStart
	}

	if len(stops) == 0 {
		return fastChargerFallback(corridor), true
	}

	return stops, true
}

// fastChargerFallback suggests up to two fast/ultra stations in corridor
// order when range alone does not mandate any stop.
func fastChargerFallback(corridor []domain.RouteStationEntry) []domain.RouteStationEntry {
	fallback := make([]domain.RouteStationEntry, 0, maxFallbackStops)
	for _, entry := range corridor {
		if !entry.Station.HasFastCharging() {
			continue
		}
		fallback = append(fallback, entry)
		if len(fallback) == maxFallbackStops {
			break
		}
	}
	return fallback
}
