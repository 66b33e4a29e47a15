package models

import "time"

// Booking statuses. Cancelled and completed are terminal; the only modeled
// forward transition is pending -> confirmed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusNoShow    = "no-show"
)

// Slot is a half-open time interval [Start, End) reserving an advocate.
// Two slots overlap iff A.Start < B.End && B.Start < A.End; touching
// endpoints do not overlap.
type Slot struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Booking represents a reserved consultation window with an advocate.
type Booking struct {
	ID         string         `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	UserID     string         `bson:"user_id" json:"user_id"`                   // User who requested the consultation
	AdvocateID string         `bson:"advocate_id" json:"advocate_id"`           // Advocate being booked
	Slot       Slot           `bson:"slot" json:"slot"`                         // Reserved window, Start < End strictly
	Status     string         `bson:"status" json:"status"`                     // One of the BookingStatus* constants
	Amount     float64        `bson:"amount" json:"amount"`                     // Consultation fee charged
	Currency   string         `bson:"currency" json:"currency"`                 // ISO currency code, defaults to INR
	PaymentID  string         `bson:"payment_id,omitempty" json:"payment_id"`   // Back-reference to the succeeded PaymentRecord
	Notes      string         `bson:"notes,omitempty" json:"notes,omitempty"`   // Free-form notes from the requester
	Meta       map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`     // Arbitrary metadata
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updated_at"`
}

// IsFinal reports whether the booking can no longer change status.
func (b *Booking) IsFinal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}
