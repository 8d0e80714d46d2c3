package domain

import (
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

// RouteQuery is one planning session: start, destination and the vehicle's
// battery range. It is never persisted; a new query is created whenever the
// user changes destination or range.
type RouteQuery struct {
	Start          geo.Coordinate `json:"start"`
	Destination    geo.Coordinate `json:"destination"`
	BatteryRangeKm float64        `json:"battery_range_km"`
}

// RouteStationEntry is a station positioned along a specific route. All
// distances are relative to the query and recomputed per query.
type RouteStationEntry struct {
	Station           Station `json:"station"`
	DistanceFromStart float64 `json:"distance_from_start_km"`
	DistanceFromEnd   float64 `json:"distance_from_end_km"`
	DetourDistance    float64 `json:"detour_km"`
	OnRoute           bool    `json:"on_route"`
}

// Destination is a predefined named place users can plan routes to.
type Destination struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// RoutePlan is the full result of a planning session.
type RoutePlan struct {
	Query            RouteQuery          `json:"query"`
	TotalDistanceKm  float64             `json:"total_distance_km"`
	CorridorStations []RouteStationEntry `json:"corridor_stations"`
	RecommendedStops []RouteStationEntry `json:"recommended_stops"`
	// Feasible is false when the battery range cannot bridge a gap between
	// corridor stations; the stop list is then truncated at the last
	// reachable station.
	Feasible bool `json:"feasible"`
}
