package models

import "time"

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// PaymentProviderSimulated marks records created by the simulated payment path.
const PaymentProviderSimulated = "simulated"

// PaymentRecord represents one payment attempt tied to at most one booking.
// Records are never mutated after reaching a terminal status.
type PaymentRecord struct {
	ID                string            `bson:"id" json:"id"`
	BookingID         string            `bson:"booking_id,omitempty" json:"booking_id"`
	UserID            string            `bson:"user_id" json:"user_id"`
	Amount            float64           `bson:"amount" json:"amount"`
	Currency          string            `bson:"currency" json:"currency"`
	Provider          string            `bson:"provider" json:"provider"`
	ProviderPaymentID string            `bson:"provider_payment_id,omitempty" json:"provider_payment_id,omitempty"`
	Status            string            `bson:"status" json:"status"`
	Metadata          map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`
}
