package booking

import (
	"context"

	bookingRepo "quicklegal/database/repository/booking"
	"quicklegal/models"
)

// CreateBookingInput carries a consultation request. Amount zero means
// "use the advocate's consultation fee"; currency defaults to INR.
type CreateBookingInput struct {
	UserID     string
	AdvocateID string
	SlotStart  string
	SlotEnd    string
	Amount     float64
	Currency   string
	Notes      string
}

// BookingService is the transaction coordinator for the consultation
// booking lifecycle: slot-locked creation, simulated payment confirmation,
// cancellation and listing.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, *models.PaymentRecord, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, int64, error)
}
