package models

// RealtimeMessage is the payload pushed to a user's realtime channel.
type RealtimeMessage struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id,omitempty"`
	Slot      *Slot  `json:"slot,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ReminderPayload is carried by scheduled consultation reminder tasks.
type ReminderPayload struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	FireDate  string `json:"fire_date"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
