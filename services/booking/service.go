package booking

import (
	"context"
	"fmt"
	"time"

	advocateRepo "quicklegal/database/repository/advocate"
	bookingRepo "quicklegal/database/repository/booking"
	paymentRepo "quicklegal/database/repository/payment"
	"quicklegal/events"
	"quicklegal/models"
	"quicklegal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	AdvocateRepo advocateRepo.AdvocateRepository
	PaymentRepo  paymentRepo.PaymentRepository
	Lock         *utils.SlotLock
	Bus          *events.Bus
}

// DefaultCurrency is applied when a request does not name one.
const DefaultCurrency = "INR"

// CreateBooking serializes racing requests for the same advocate/slot-start
// behind a best-effort Redis lock, checks half-open overlap against existing
// pending/confirmed bookings, and commits the booking transactionally. The
// lock is advisory: when the backend is unreachable the flow proceeds
// unprotected (degraded mode) rather than failing closed, trading a narrow
// double-booking window for availability. booking.created is emitted only
// after the transaction commits.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	start, errStart := time.Parse(time.RFC3339, input.SlotStart)
	end, errEnd := time.Parse(time.RFC3339, input.SlotEnd)
	if errStart != nil || errEnd != nil || !start.Before(end) {
		return nil, ErrInvalidSlot
	}

	adv, err := s.AdvocateRepo.GetByID(ctx, input.AdvocateID)
	if err != nil {
		return nil, fmt.Errorf("advocate lookup failed: %w", err)
	}
	if adv == nil {
		return nil, ErrAdvocateNotFound
	}

	lockKey := utils.SlotLockKey(input.AdvocateID, start)
	lease := s.Lock.Acquire(ctx, lockKey)
	if !lease.Held {
		logger.Warn("booking: proceeding without slot lock",
			zap.String("key", lockKey), zap.String("advocate_id", input.AdvocateID))
	}
	// Released on every exit path: success, conflict or transaction failure.
	defer func() {
		if lease.Held {
			s.Lock.Release(ctx, lease)
		}
	}()

	overlap, err := s.Repo.HasOverlap(ctx, input.AdvocateID, start, end)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if overlap {
		return nil, ErrSlotTaken
	}

	amount := input.Amount
	if amount == 0 {
		amount = adv.ConsultationFee
	}
	currency := input.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     input.UserID,
		AdvocateID: input.AdvocateID,
		Slot:       models.Slot{Start: start, End: end},
		Status:     models.BookingStatusPending,
		Amount:     amount,
		Currency:   currency,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.CreateTransactionally(ctx, booking); err != nil {
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	s.Bus.Emit(events.EventBookingCreated, booking)
	return booking, nil
}

// CancelBooking moves a non-terminal booking to cancelled and emits
// booking.cancelled. Cancelled and completed bookings stay as they are.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.IsFinal() {
		return nil, ErrBookingFinal
	}

	if err := s.Repo.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled, ""); err != nil {
		return nil, fmt.Errorf("cancel update failed: %w", err)
	}
	booking.Status = models.BookingStatusCancelled

	s.Bus.Emit(events.EventBookingCancelled, booking)
	return booking, nil
}

// ListBookings returns a page of bookings sorted by slot start, newest first.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, int64, error) {
	return s.Repo.List(ctx, filter)
}
