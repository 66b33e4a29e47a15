package booking

import "errors"

// Errors crossing the booking service boundary. Lock unavailability is not
// among them: a missed lock downgrades to unprotected operation and is only
// logged. Storage failures are wrapped and propagated as-is.
var (
	// ErrInvalidSlot marks a malformed or inverted time range.
	ErrInvalidSlot = errors.New("invalid slot times")

	// ErrAdvocateNotFound marks a booking request against an unknown advocate.
	ErrAdvocateNotFound = errors.New("advocate not found")

	// ErrBookingNotFound marks confirmation or cancellation of an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotTaken marks a conflict with an existing pending or confirmed
	// booking. Retrying the same slot will not succeed.
	ErrSlotTaken = errors.New("selected slot is not available")

	// ErrBookingFinal marks a cancellation attempt on a terminal booking.
	ErrBookingFinal = errors.New("booking is already finalized")
)
