// Package queue defines the message payloads exchanged over the broker and
// the background consumer that turns them into an audit trail.
package queue

// Booking event actions.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionCancelled = "cancelled"
)

// BookingEvent is published on the booking.events queue for every booking
// mutation.  It carries the full record so downstream consumers can log or
// notify without re-reading the store.
type BookingEvent struct {
	Action     string `json:"action"` // created | updated | cancelled
	BookingID  string `json:"booking_id"`
	Block      string `json:"block"`
	Room       string `json:"room"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Date       string `json:"date"`
	EndDate    string `json:"end_date,omitempty"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Purpose    string `json:"purpose"`
	OccurredAt string `json:"occurred_at"` // RFC 3339 UTC
}
