package domain

import (
	"time"
)

// TicketStatus is the lifecycle state of a city ticket.
type TicketStatus string

const (
	TicketStatusActive   TicketStatus = "active"
	TicketStatusUsed     TicketStatus = "used"
	TicketStatusExpired  TicketStatus = "expired"
	TicketStatusReturned TicketStatus = "returned"
)

// TicketKind groups tickets by the city service they belong to.
type TicketKind string

const (
	TicketKindTransit TicketKind = "komunikacja"
	TicketKindCulture TicketKind = "kultura"
	TicketKindSport   TicketKind = "sport"
)

// Ticket is a purchased city ticket held by an anonymous session.
type Ticket struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	SessionID  string       `json:"session_id" gorm:"index"`
	Name       string       `json:"name"`
	Kind       TicketKind   `json:"kind"`
	Date       time.Time    `json:"date"`
	Time       string       `json:"time,omitempty"`
	Location   string       `json:"location,omitempty"`
	Price      float64      `json:"price"`
	Status     TicketStatus `json:"status"`
	ValidUntil *time.Time   `json:"valid_until,omitempty"`
	// PaymentID references the payment-provider charge, used for refunds on
	// return.
	PaymentID string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Returnable reports whether the ticket may still be returned for a refund.
func (t Ticket) Returnable(now time.Time) bool {
	if t.Status != TicketStatusActive {
		return false
	}
	if t.ValidUntil != nil && now.After(*t.ValidUntil) {
		return false
	}
	return true
}

// DamageReport is a user-filed problem report for a ticket or the service it
// grants access to.
type DamageReport struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	TicketID    string    `json:"ticket_id" gorm:"index"`
	SessionID   string    `json:"session_id" gorm:"index"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
