package schedule

import (
	"sort"
	"strings"

	"github.com/iliyamo/classroom-booking/internal/model"
)

// FilterBookings returns the bookings whose room, block, requester name,
// department or purpose contains query, case-insensitively.  An empty or
// all-whitespace query returns the input unchanged.
func FilterBookings(bookings []model.Booking, query string) []model.Booking {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return bookings
	}
	out := []model.Booking{}
	for _, b := range bookings {
		if strings.Contains(strings.ToLower(b.Room), q) ||
			strings.Contains(strings.ToLower(b.Block), q) ||
			strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Department), q) ||
			strings.Contains(strings.ToLower(b.Purpose), q) {
			out = append(out, b)
		}
	}
	return out
}

// BookingsOn returns the bookings whose inclusive date range covers date,
// sorted ascending by start time.  This drives the day views: today's
// schedule, the calendar day panel and the per-room day listing.
func BookingsOn(bookings []model.Booking, date string) []model.Booking {
	out := []model.Booking{}
	for _, b := range bookings {
		if date >= b.Date && date <= b.SpanEnd() {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// CountByBlock tallies bookings per block name.  Multi-day bookings count
// once, not once per day.
func CountByBlock(bookings []model.Booking) map[string]int {
	out := map[string]int{}
	for _, b := range bookings {
		out[b.Block]++
	}
	return out
}

// CountByRoom tallies bookings per room code.
func CountByRoom(bookings []model.Booking) map[string]int {
	out := map[string]int{}
	for _, b := range bookings {
		out[b.Room]++
	}
	return out
}

// TopEntry returns the key with the highest count, or "N/A" for an empty
// map.  Ties break toward the lexicographically smaller key so the result
// is deterministic.
func TopEntry(counts map[string]int) string {
	top := "N/A"
	best := -1
	for k, n := range counts {
		if n > best || (n == best && k < top) {
			top, best = k, n
		}
	}
	return top
}
