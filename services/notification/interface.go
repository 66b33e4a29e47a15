package notification

import (
	"context"

	"quicklegal/models"
)

// NotificationService delivers email and realtime messages. Both operations
// are fire-and-forget from the booking core's perspective: failures are
// logged at the subscriber boundary and never surfaced to the flows that
// triggered them.
type NotificationService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendRealtimeToUser(ctx context.Context, userID string, payload models.RealtimeMessage) error
}
