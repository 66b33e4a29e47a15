package models

import "time"

// AvailabilityWindow is a weekly recurring window during which an advocate
// accepts consultations. Times are "HH:MM" in the advocate's local zone.
type AvailabilityWindow struct {
	DayOfWeek int    `bson:"day_of_week" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

// Advocate represents a lawyer offering consultations on the marketplace.
type Advocate struct {
	ID              string               `bson:"id" json:"id"`
	UserID          string               `bson:"user_id" json:"user_id"` // Owning user account
	Expertise       []string             `bson:"expertise" json:"expertise"`
	PracticeAreas   []string             `bson:"practice_areas" json:"practice_areas"`
	Languages       []string             `bson:"languages" json:"languages"`
	ConsultationFee float64              `bson:"consultation_fee" json:"consultation_fee"`
	Rating          float64              `bson:"rating" json:"rating"`
	Availability    []AvailabilityWindow `bson:"availability" json:"availability"`
	Bio             string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Address         string               `bson:"address,omitempty" json:"address,omitempty"`
	IsActive        bool                 `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updated_at"`
}
