package station

import (
	"errors"
	"math"
	"sort"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
	"github.com/karta-lodzianina/ev-backend/pkg/geo"
)

// ErrNoPosition is returned by SortStations when a distance sort is
// requested without a user position.
var ErrNoPosition = errors.New("distance sort requires a user position")

// Sort keys accepted by SortStations.
const (
	SortByDistance     = "distance"
	SortByAvailability = "availability"
	SortByPrice        = "price"
	SortByPower        = "power"
)

// priceSentinel sorts stations with no known price after every priced one.
const priceSentinel = math.MaxFloat64

// FilterStations applies the AND-combined criteria to the catalog. Criteria
// left at their zero values impose no restriction. Idempotent: filtering an
// already-filtered list with the same criteria changes nothing.
func FilterStations(catalog []domain.Station, query ports.StationQuery) []domain.Station {
	out := make([]domain.Station, 0, len(catalog))
	for _, s := range catalog {
		if matches(s, query) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s domain.Station, query ports.StationQuery) bool {
	switch query.Availability {
	case "", "all":
	case "available":
		if s.AvailableChargers == 0 {
			return false
		}
	case "occupied":
		if s.AvailableChargers > 0 {
			return false
		}
	}

	if len(query.PowerCategories) > 0 && !containsCategory(query.PowerCategories, s.PowerCategory) {
		return false
	}

	if len(query.ConnectorTypes) > 0 && !hasAnyConnector(s, query.ConnectorTypes) {
		return false
	}

	if query.Operator != "" && query.Operator != "all" && s.Operator.ShortName != query.Operator {
		return false
	}

	// A price ceiling never excludes a station whose price is unknown.
	if query.MaxPrice != nil && s.AvgPricePerKwh != nil && *s.AvgPricePerKwh > *query.MaxPrice {
		return false
	}

	if query.OnlyOpen && !s.IsOpenNow {
		return false
	}

	return true
}

func containsCategory(set []domain.PowerCategory, c domain.PowerCategory) bool {
	for _, want := range set {
		if want == c {
			return true
		}
	}
	return false
}

func hasAnyConnector(s domain.Station, types []string) bool {
	for _, p := range s.ChargingPoints {
		if p.HasConnectorType(types) {
			return true
		}
	}
	return false
}

// SortStations orders stations by the given key, stable for ties. The input
// slice is not modified. A distance sort without a position is an error
// rather than a silent no-op; distance sorting also fills in the transient
// formatted Distance field.
func SortStations(stations []domain.Station, sortBy string, pos *geo.Coordinate) ([]domain.Station, error) {
	out := make([]domain.Station, len(stations))
	copy(out, stations)

	switch sortBy {
	case "":
		return out, nil

	case SortByDistance:
		if pos == nil {
			return nil, ErrNoPosition
		}
		type measured struct {
			station domain.Station
			km      float64
		}
		paired := make([]measured, len(out))
		for i, s := range out {
			km := geo.DistanceKm(*pos, geo.Coordinate{
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
			})
			s.Distance = geo.FormatDistance(km)
			paired[i] = measured{station: s, km: km}
		}
		sort.SliceStable(paired, func(i, j int) bool { return paired[i].km < paired[j].km })
		for i := range paired {
			out[i] = paired[i].station
		}
		return out, nil

	case SortByAvailability:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AvailableChargers > out[j].AvailableChargers
		})
		return out, nil

	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return priceOf(out[i]) < priceOf(out[j])
		})
		return out, nil

	case SortByPower:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].MaxPower > out[j].MaxPower
		})
		return out, nil

	default:
		return out, nil
	}
}

func priceOf(s domain.Station) float64 {
	if s.AvgPricePerKwh == nil {
		return priceSentinel
	}
	return *s.AvgPricePerKwh
}
