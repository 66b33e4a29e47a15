// File: utils/timerange.go
package utils

import (
	"fmt"
	"time"

	"quicklegal/models"
)

// RangesOverlap reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SlotsOverlap reports whether any slot in existing intersects [start, end).
func SlotsOverlap(existing []models.Slot, start, end time.Time) bool {
	for _, s := range existing {
		if RangesOverlap(s.Start, s.End, start, end) {
			return true
		}
	}
	return false
}

// WithinAvailability reports whether t falls inside a weekly availability
// window. The window's end minute is exclusive, matching slot semantics.
func WithinAvailability(w models.AvailabilityWindow, t time.Time) bool {
	if int(t.Weekday()) != w.DayOfWeek {
		return false
	}
	hhmm := fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	return hhmm >= w.StartTime && hhmm < w.EndTime
}
