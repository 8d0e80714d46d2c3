package route

import (
	"sort"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

const (
	// corridorRatio bounds the accepted detour to a share of the direct trip.
	corridorRatio = 0.2
	// corridorFloorKm keeps short trips from excluding every station.
	corridorFloorKm = 2.0
)

// CorridorStations classifies which catalog stations lie along the straight
// line from start to destination. A station is on route when the detour
// through it (distance via the station minus the direct distance) stays under
// max(total*0.2, 2 km). The result contains only on-route stations, sorted
// ascending by distance from start; ordering is stable for equal distances.
func CorridorStations(start, destination geo.Coordinate, catalog []domain.Station) []domain.RouteStationEntry {
	total := geo.DistanceKm(start, destination)
	threshold := total * corridorRatio
	if threshold < corridorFloorKm {
		threshold = corridorFloorKm
	}

	entries := make([]domain.RouteStationEntry, 0, len(catalog))
	for _, s := range catalog {
		pos := geo.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
		fromStart := geo.DistanceKm(start, pos)
		fromEnd := geo.DistanceKm(pos, destination)
		detour := fromStart + fromEnd - total

		if detour >= threshold {
			continue
		}

		entries = append(entries, domain.RouteStationEntry{
			Station:           s,
			DistanceFromStart: fromStart,
			DistanceFromEnd:   fromEnd,
			DetourDistance:    detour,
			OnRoute:           true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DistanceFromStart < entries[j].DistanceFromStart
	})

	return entries
}
