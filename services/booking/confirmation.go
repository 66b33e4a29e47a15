package booking

import (
	"context"
	"fmt"
	"time"

	"quicklegal/events"
	"quicklegal/models"

	"github.com/google/uuid"
)

// ConfirmBooking finalizes an already-reserved slot on simulated payment
// success: it creates exactly one succeeded PaymentRecord referencing the
// booking, moves the booking to confirmed with the payment back-reference,
// then emits payment.succeeded followed by booking.confirmed. Availability
// is not re-checked; the reservation's correctness was established at
// creation time. Repeated external calls are not deduplicated.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, *models.PaymentRecord, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	if booking == nil {
		return nil, nil, ErrBookingNotFound
	}

	now := time.Now()
	payment := &models.PaymentRecord{
		ID:                uuid.New().String(),
		BookingID:         booking.ID,
		UserID:            booking.UserID,
		Amount:            booking.Amount,
		Currency:          booking.Currency,
		Provider:          models.PaymentProviderSimulated,
		ProviderPaymentID: fmt.Sprintf("sim-%d", now.UnixMilli()),
		Status:            models.PaymentStatusSucceeded,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("payment record creation failed: %w", err)
	}

	if err := s.Repo.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed, payment.ID); err != nil {
		return nil, nil, fmt.Errorf("confirm update failed: %w", err)
	}
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentID = payment.ID

	s.Bus.Emit(events.EventPaymentSucceeded, payment)
	s.Bus.Emit(events.EventBookingConfirmed, booking)

	return booking, payment, nil
}
