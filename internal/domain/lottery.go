package domain

import (
	"time"
)

// PrizeType categorizes lottery prizes.
type PrizeType string

const (
	PrizeTypePercent PrizeType = "percent"
	PrizeTypeVoucher PrizeType = "voucher"
	PrizeTypeTicket  PrizeType = "ticket"
	PrizeTypeOther   PrizeType = "other"
)

// Prize is a scratch-card lottery win tied to an anonymous session.
type Prize struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	SessionID   string    `json:"session_id" gorm:"index"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        PrizeType `json:"type"`
	Value       float64   `json:"value"`
	Code        string    `json:"code" gorm:"uniqueIndex"`
	Partner     string    `json:"partner,omitempty"`
	WonAt       time.Time `json:"won_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Used        bool      `json:"used"`
}

// Expired reports whether the prize can no longer be redeemed.
func (p Prize) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// Draw records the last lottery draw per session, enforcing the cooldown.
type Draw struct {
	SessionID string    `json:"session_id" gorm:"primaryKey"`
	DrawnAt   time.Time `json:"drawn_at"`
	PrizeID   string    `json:"prize_id"`
}
