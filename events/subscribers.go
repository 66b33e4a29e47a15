package events

import (
	"context"
	"fmt"
	"time"

	advocateRepo "quicklegal/database/repository/advocate"
	bookingRepo "quicklegal/database/repository/booking"
	userRepo "quicklegal/database/repository/user"
	"quicklegal/models"
	"quicklegal/services/notification"
	"quicklegal/services/tasks"
	"quicklegal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SubscriberDeps carries everything the event subscribers need. Reminders
// may be nil; reminder scheduling is then skipped.
type SubscriberDeps struct {
	Bookings  bookingRepo.BookingRepository
	Advocates advocateRepo.AdvocateRepository
	Users     userRepo.UserRepository
	Notifier  notification.NotificationService
	Cache     *redis.Client
	Reminders *tasks.ReminderScheduler
}

// RegisterSubscribers wires the side-effect handlers for booking, payment
// and user events. Every send is individually guarded: a failed email to
// one party never blocks the other party's notification.
func RegisterSubscribers(bus *Bus, deps SubscriberDeps) {
	bus.Subscribe(EventBookingCreated, deps.onBookingCreated)
	bus.Subscribe(EventPaymentSucceeded, deps.onPaymentSucceeded)
	bus.Subscribe(EventBookingConfirmed, deps.onBookingConfirmed)
	bus.Subscribe(EventBookingCancelled, deps.onBookingCancelled)
	bus.Subscribe(EventUserCreated, deps.onUserCreated)
	bus.Subscribe(EventUserLoggedIn, deps.onUserLoggedIn)
}

// advocateOwner resolves the user account behind an advocate profile.
func (d SubscriberDeps) advocateOwner(ctx context.Context, advocateID string) *models.User {
	logger := utils.GetLogger()
	adv, err := d.Advocates.GetByID(ctx, advocateID)
	if err != nil || adv == nil {
		if err != nil {
			logger.Warn("subscriber: advocate lookup failed", zap.String("advocate_id", advocateID), zap.Error(err))
		}
		return nil
	}
	owner, err := d.Users.GetByID(ctx, adv.UserID)
	if err != nil {
		logger.Warn("subscriber: advocate user lookup failed", zap.String("user_id", adv.UserID), zap.Error(err))
		return nil
	}
	return owner
}

func (d SubscriberDeps) emailQuietly(ctx context.Context, to, subject, body string) {
	if to == "" {
		return
	}
	if err := d.Notifier.SendEmail(ctx, to, subject, body); err != nil {
		utils.GetLogger().Warn("subscriber: email failed", zap.String("to", to), zap.Error(err))
	}
}

func (d SubscriberDeps) pushQuietly(ctx context.Context, userID string, msg models.RealtimeMessage) {
	if userID == "" {
		return
	}
	if err := d.Notifier.SendRealtimeToUser(ctx, userID, msg); err != nil {
		utils.GetLogger().Warn("subscriber: realtime push failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func (d SubscriberDeps) onBookingCreated(ctx context.Context, payload any) error {
	booking, ok := payload.(*models.Booking)
	if !ok {
		return fmt.Errorf("booking.created: unexpected payload %T", payload)
	}
	logger := utils.GetLogger()
	logger.Info("Event: booking.created",
		zap.String("booking_id", booking.ID),
		zap.String("advocate_id", booking.AdvocateID),
		zap.String("user_id", booking.UserID))

	user, err := d.Users.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("booking.created: user lookup failed", zap.Error(err))
	}
	advUser := d.advocateOwner(ctx, booking.AdvocateID)

	if user != nil {
		d.emailQuietly(ctx, user.Email, "Booking received - QuickLegal",
			fmt.Sprintf("Your booking (id: %s) is created and pending confirmation.", booking.ID))
	}
	if advUser != nil {
		d.emailQuietly(ctx, advUser.Email, "New booking request - QuickLegal",
			fmt.Sprintf("You have a new booking request (id: %s). Please confirm or reject it.", booking.ID))
		d.pushQuietly(ctx, advUser.ID, models.RealtimeMessage{
			Type:      "booking.request",
			BookingID: booking.ID,
			Slot:      &booking.Slot,
			Message:   "New booking request",
		})
	}
	return nil
}

func (d SubscriberDeps) onPaymentSucceeded(ctx context.Context, payload any) error {
	payment, ok := payload.(*models.PaymentRecord)
	if !ok {
		return fmt.Errorf("payment.succeeded: unexpected payload %T", payload)
	}
	logger := utils.GetLogger()
	logger.Info("Event: payment.succeeded",
		zap.String("payment_id", payment.ID),
		zap.String("booking_id", payment.BookingID))

	if payment.BookingID == "" {
		return nil
	}

	booking, err := d.Bookings.GetByID(ctx, payment.BookingID)
	if err != nil {
		return fmt.Errorf("payment.succeeded: booking lookup: %w", err)
	}
	if booking == nil {
		logger.Warn("payment.succeeded: booking not found", zap.String("booking_id", payment.BookingID))
		return nil
	}

	// Replayed or out-of-band payment events still converge the booking to
	// confirmed; an already-confirmed booking is left untouched.
	if booking.Status != models.BookingStatusConfirmed {
		if err := d.Bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusConfirmed, payment.ID); err != nil {
			logger.Warn("payment.succeeded: confirm update failed", zap.Error(err))
		} else {
			booking.Status = models.BookingStatusConfirmed
			booking.PaymentID = payment.ID
		}
	}

	user, err := d.Users.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("payment.succeeded: user lookup failed", zap.Error(err))
	}
	advUser := d.advocateOwner(ctx, booking.AdvocateID)

	if user != nil {
		d.emailQuietly(ctx, user.Email, "Payment successful - Booking confirmed",
			fmt.Sprintf("Your payment for booking %s was successful. Booking is confirmed.", booking.ID))
		d.pushQuietly(ctx, user.ID, models.RealtimeMessage{Type: "booking.confirmed", BookingID: booking.ID})
	}
	if advUser != nil {
		d.emailQuietly(ctx, advUser.Email, "Booking confirmed",
			fmt.Sprintf("Booking %s has been confirmed and paid.", booking.ID))
		d.pushQuietly(ctx, advUser.ID, models.RealtimeMessage{Type: "booking.confirmed", BookingID: booking.ID})
	}
	return nil
}

func (d SubscriberDeps) onBookingConfirmed(ctx context.Context, payload any) error {
	booking, ok := payload.(*models.Booking)
	if !ok {
		return fmt.Errorf("booking.confirmed: unexpected payload %T", payload)
	}
	utils.GetLogger().Info("Event: booking.confirmed", zap.String("booking_id", booking.ID))

	d.pushQuietly(ctx, booking.UserID, models.RealtimeMessage{Type: "booking.confirmed", BookingID: booking.ID})
	if advUser := d.advocateOwner(ctx, booking.AdvocateID); advUser != nil {
		d.pushQuietly(ctx, advUser.ID, models.RealtimeMessage{Type: "booking.confirmed", BookingID: booking.ID})
	}

	if d.Reminders != nil {
		if err := d.Reminders.ScheduleBookingReminder(booking); err != nil {
			utils.GetLogger().Warn("booking.confirmed: reminder scheduling failed",
				zap.String("booking_id", booking.ID), zap.Error(err))
		}
	}
	return nil
}

func (d SubscriberDeps) onBookingCancelled(ctx context.Context, payload any) error {
	booking, ok := payload.(*models.Booking)
	if !ok {
		return fmt.Errorf("booking.cancelled: unexpected payload %T", payload)
	}
	logger := utils.GetLogger()
	logger.Info("Event: booking.cancelled", zap.String("booking_id", booking.ID))

	d.pushQuietly(ctx, booking.UserID, models.RealtimeMessage{Type: "booking.cancelled", BookingID: booking.ID})
	if advUser := d.advocateOwner(ctx, booking.AdvocateID); advUser != nil {
		d.pushQuietly(ctx, advUser.ID, models.RealtimeMessage{Type: "booking.cancelled", BookingID: booking.ID})
	}

	user, err := d.Users.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("booking.cancelled: user lookup failed", zap.Error(err))
		return nil
	}
	if user != nil {
		d.emailQuietly(ctx, user.Email, "Booking cancelled",
			fmt.Sprintf("Your booking %s was cancelled.", booking.ID))
	}
	return nil
}

func (d SubscriberDeps) onUserCreated(ctx context.Context, payload any) error {
	p, ok := payload.(UserCreatedPayload)
	if !ok {
		return fmt.Errorf("user.created: unexpected payload %T", payload)
	}
	utils.GetLogger().Info("Event: user.created", zap.String("user_id", p.UserID), zap.String("email", p.Email))
	if p.Email == "" {
		return nil
	}
	d.emailQuietly(ctx, p.Email, "Welcome to QuickLegal",
		"Thanks for signing up for QuickLegal. You can now search advocates, book consultations, and generate documents.")
	return nil
}

func (d SubscriberDeps) onUserLoggedIn(ctx context.Context, payload any) error {
	p, ok := payload.(UserLoggedInPayload)
	if !ok {
		return fmt.Errorf("user.logged_in: unexpected payload %T", payload)
	}
	if p.UserID == "" {
		return nil
	}
	utils.GetLogger().Info("Event: user.logged_in", zap.String("user_id", p.UserID))

	key := utils.LastLoginKeyPrefix + p.UserID
	stamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	if err := d.Cache.Set(ctx, key, stamp, utils.LastLoginTTL).Err(); err != nil {
		utils.GetLogger().Warn("user.logged_in: failed to write last login", zap.Error(err))
	}
	return nil
}
