// Package schedule implements the reservation validator: pure, side-effect
// free functions over a snapshot of the bookings collection.  Nothing here
// touches the store; callers load the collection and pass it in, which keeps
// every function deterministic and trivially testable.
//
// Date strings are ISO YYYY-MM-DD and clock strings are zero-padded 24h
// HH:MM throughout, so lexicographic comparison equals chronological
// comparison and most predicates work on the strings directly.
package schedule

import (
	"time"

	"github.com/iliyamo/classroom-booking/internal/model"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Status describes how heavily a room is booked on a given day.
type Status string

const (
	StatusAvailable       Status = "available"
	StatusPartiallyBooked Status = "partially_booked"
	StatusFullyBooked     Status = "fully_booked"
)

// fullyBookedMinutes is the booked-minutes threshold at which a room counts
// as fully booked for a day: 4 hours of an assumed 10-hour operating day.
// It is a fixed policy constant, not configuration.
const fullyBookedMinutes = 240

// HasConflict reports whether the candidate window for room overlaps any
// existing booking.  A booking b conflicts when all of the following hold:
//
//	b.ID != excludeID
//	b.Room == room
//	startDate <= b.SpanEnd() && endDate >= b.Date   (inclusive date ranges)
//	startTime < b.EndTime && endTime > b.StartTime  (half-open time ranges)
//
// The two overlap rules are deliberately asymmetric: date spans that merely
// touch on a boundary day DO intersect, while a booking ending exactly when
// another starts does NOT conflict.  Rooms are matched by room code alone;
// the campus inventory keeps codes unique across blocks, and two blocks
// reusing a code would be treated as the same physical room.  excludeID
// skips one booking so an edited booking is never checked against itself.
func HasConflict(bookings []model.Booking, room, startDate, endDate, startTime, endTime, excludeID string) bool {
	if endDate == "" {
		endDate = startDate
	}
	for _, b := range bookings {
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if b.Room != room {
			continue
		}
		if startDate > b.SpanEnd() || endDate < b.Date {
			continue
		}
		if startTime < b.EndTime && endTime > b.StartTime {
			return true
		}
	}
	return false
}

// RoomStatus derives the occupancy status of a room on one calendar day.
// It sums the daily window length of every booking whose inclusive date
// range covers date, without deduplicating overlaps; the conflict check
// normally keeps overlapping bookings from coexisting, but the sum is
// computed over whatever data exists.
func RoomStatus(bookings []model.Booking, room, date string) Status {
	total := 0
	for _, b := range bookings {
		if b.Room != room || date < b.Date || date > b.SpanEnd() {
			continue
		}
		total += minutesBetween(b.StartTime, b.EndTime)
	}
	switch {
	case total == 0:
		return StatusAvailable
	case total >= fullyBookedMinutes:
		return StatusFullyBooked
	default:
		return StatusPartiallyBooked
	}
}

// minutesBetween returns the minutes separating two HH:MM clock values.
// Malformed values contribute zero minutes so bad data never blocks a
// status computation.
func minutesBetween(start, end string) int {
	s, err := clockMinutes(start)
	if err != nil {
		return 0
	}
	e, err := clockMinutes(end)
	if err != nil {
		return 0
	}
	return e - s
}

func clockMinutes(v string) (int, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidDate reports whether v is a well-formed YYYY-MM-DD calendar date.
func ValidDate(v string) bool {
	_, err := time.Parse(dateLayout, v)
	return err == nil
}

// ValidClock reports whether v is a zero-padded 24h HH:MM clock value.
func ValidClock(v string) bool {
	_, err := time.Parse(clockLayout, v)
	return err == nil
}
