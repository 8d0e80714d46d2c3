package domain

import (
	"time"
)

// AvailabilityStatus is the realtime state of a single charging point.
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityOccupied  AvailabilityStatus = "occupied"
	AvailabilityOffline   AvailabilityStatus = "offline"
	AvailabilityUnknown   AvailabilityStatus = "unknown"
)

// OperationalStatus reflects the EIPA operational state of a charging point.
type OperationalStatus string

const (
	OperationalOK           OperationalStatus = "operational"
	OperationalOutOfService OperationalStatus = "outOfService"
	OperationalMaintenance  OperationalStatus = "maintenance"
)

// PowerCategory classifies a station by its strongest charging point.
type PowerCategory string

const (
	PowerCategoryAC    PowerCategory = "ac"    // <= 22 kW
	PowerCategoryFast  PowerCategory = "fast"  // 23-49 kW
	PowerCategoryUltra PowerCategory = "ultra" // >= 50 kW
)

// PowerCategoryFor derives the category from a maximum power in kW.
func PowerCategoryFor(powerKW float64) PowerCategory {
	switch {
	case powerKW <= 22:
		return PowerCategoryAC
	case powerKW <= 49:
		return PowerCategoryFast
	default:
		return PowerCategoryUltra
	}
}

// Connector describes a single plug on a charging point.
type Connector struct {
	Type          string  `json:"type"` // e.g. Type 2, CCS Combo 2, CHAdeMO
	PowerKW       float64 `json:"power"`
	CableAttached bool    `json:"cable_attached"`
}

// ChargingPoint is one charger within a station. A point belongs to exactly
// one station.
type ChargingPoint struct {
	ID                int64              `json:"id" gorm:"primaryKey"`
	StationID         string             `json:"station_id" gorm:"index"`
	Code              string             `json:"code"`
	PowerKW           float64            `json:"power"`
	Connectors        []Connector        `json:"connectors" gorm:"serializer:json"`
	Availability      AvailabilityStatus `json:"availability"`
	OperationalStatus OperationalStatus  `json:"operational_status"`
	PricePerKwh       *float64           `json:"price_per_kwh,omitempty"`
	Currency          string             `json:"currency,omitempty"`
	LastUpdate        time.Time          `json:"last_update"`
}

// HasConnectorType reports whether any connector on the point matches one of
// the requested types.
func (p ChargingPoint) HasConnectorType(types []string) bool {
	for _, c := range p.Connectors {
		for _, t := range types {
			if c.Type == t {
				return true
			}
		}
	}
	return false
}

// Operator identifies a charging network operator from the EIPA registry.
type Operator struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Code      string `json:"code"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Address is the postal location of a station.
type Address struct {
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Full        string `json:"full"`
}

// Station is a charging pool: one physical location owning one or more
// charging points. MaxPower, PowerCategory, TotalChargers and
// AvailableChargers are derived from the points and must be refreshed with
// Recompute whenever point availability changes.
type Station struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	PoolID            int             `json:"pool_id"`
	Name              string          `json:"name"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	Address           Address         `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Operator          Operator        `json:"operator" gorm:"embedded;embeddedPrefix:operator_"`
	ChargingPoints    []ChargingPoint `json:"charging_points" gorm:"foreignKey:StationID"`
	MaxPower          float64         `json:"max_power"`
	PowerCategory     PowerCategory   `json:"power_category"`
	TotalChargers     int             `json:"total_chargers"`
	AvailableChargers int             `json:"available_chargers"`
	IsOpen24h         bool            `json:"is_open_24h"`
	IsOpenNow         bool            `json:"is_open_now"`
	Accessibility     string          `json:"accessibility,omitempty"`
	PaymentMethods    []string        `json:"payment_methods" gorm:"serializer:json"`
	AuthMethods       []string        `json:"auth_methods" gorm:"serializer:json"`
	Features          []string        `json:"features" gorm:"serializer:json"`
	AvgPricePerKwh    *float64        `json:"avg_price_per_kwh,omitempty"`
	// Distance is transient: formatted relative to a user position, never stored.
	Distance  string    `json:"distance,omitempty" gorm:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Recompute refreshes the derived fields from the charging points. It keeps
// the invariants TotalChargers == len(points), AvailableChargers <=
// TotalChargers and PowerCategory == PowerCategoryFor(MaxPower).
func (s *Station) Recompute() {
	s.TotalChargers = len(s.ChargingPoints)
	s.AvailableChargers = 0
	s.MaxPower = 0

	var priceSum float64
	var priced int

	for _, p := range s.ChargingPoints {
		if p.Availability == AvailabilityAvailable {
			s.AvailableChargers++
		}
		if p.PowerKW > s.MaxPower {
			s.MaxPower = p.PowerKW
		}
		if p.PricePerKwh != nil {
			priceSum += *p.PricePerKwh
			priced++
		}
	}

	s.PowerCategory = PowerCategoryFor(s.MaxPower)

	if priced > 0 {
		avg := priceSum / float64(priced)
		s.AvgPricePerKwh = &avg
	} else {
		s.AvgPricePerKwh = nil
	}
}

// HasFastCharging reports whether any point delivers at least 50 kW.
func (s Station) HasFastCharging() bool {
	for _, p := range s.ChargingPoints {
		if p.PowerKW >= 50 {
			return true
		}
	}
	return false
}
