package domain

import (
	"time"
)

// ChargingSession is one completed charging visit kept in the user's history.
type ChargingSession struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	SessionID     string    `json:"session_id" gorm:"index"`
	StationID     string    `json:"station_id" gorm:"index"`
	StationName   string    `json:"station_name"`
	Date          time.Time `json:"date"`
	DurationMin   int       `json:"duration"` // minutes
	EnergyKWh     float64   `json:"energy"`
	Cost          float64   `json:"cost"`
	ConnectorType string    `json:"connector_type"`
	PowerKW       float64   `json:"power"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryStats aggregates a set of charging sessions.
type HistoryStats struct {
	TotalCost     float64 `json:"total_cost"`
	TotalEnergy   float64 `json:"total_energy"`
	TotalDuration int     `json:"total_duration"`
	TotalSessions int     `json:"total_sessions"`
}

// Subscription is a request to be alerted when a station becomes available.
type Subscription struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SessionID   string    `json:"session_id" gorm:"index"`
	StationID   string    `json:"station_id" gorm:"index"`
	StationName string    `json:"station_name"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}
