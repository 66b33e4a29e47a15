package bookingRepo

import (
	"context"
	"time"

	"quicklegal/models"
)

// ListFilter narrows List results. Zero-value fields are ignored.
type ListFilter struct {
	UserID     string
	AdvocateID string
	Page       int
	Limit      int
}

// BookingRepository persists bookings. HasOverlap and CreateTransactionally
// are the two operations the slot-concurrency core depends on; the rest is
// plain CRUD used by the confirmation, cancellation and listing flows.
type BookingRepository interface {
	// HasOverlap reports whether any pending or confirmed booking for the
	// advocate intersects [start, end) under half-open semantics.
	HasOverlap(ctx context.Context, advocateID string, start, end time.Time) (bool, error)

	// CreateTransactionally inserts the booking inside a Mongo session
	// transaction so the write either commits fully or not at all.
	CreateTransactionally(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// UpdateStatus sets the booking status and, when paymentID is non-empty,
	// attaches the payment back-reference in the same atomic update.
	UpdateStatus(ctx context.Context, id, status, paymentID string) error

	List(ctx context.Context, filter ListFilter) ([]models.Booking, int64, error)
}
