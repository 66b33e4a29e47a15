package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"quicklegal/config"
	"quicklegal/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how long before the slot start a consultation
// reminder fires.
const ReminderLeadTime = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues consultation reminders on the Redis-backed
// task queue processed by the cron worker.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler connects an asynq client to the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder for the requesting user one
// hour before the consultation starts. Slots starting sooner than the lead
// time get no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	fireAt := booking.Slot.Start.Add(-ReminderLeadTime)
	if time.Until(fireAt) <= 0 {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		FireDate:  fireAt.UTC().Format(time.RFC3339),
		Title:     "Upcoming consultation",
		Body: fmt.Sprintf("Your consultation starts at %s.",
			booking.Slot.Start.Format("15:04 on Jan 2")),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
