package model

// Booking records a single classroom reservation.  A booking covers an
// inclusive calendar date range and applies the same time-of-day window to
// every day of that range (a multi-day booking behaves like a recurring
// daily meeting).  The JSON field names match the persisted collection
// layout, so snapshots written by earlier versions of the admin tool load
// unchanged.
//
// Fields:
//  ID         – unique identifier, generated when the booking is created.
//  Block      – display name of the campus block (e.g. "Block A").
//  Room       – room code (e.g. "A101"); conflict checks key on this alone.
//  Name       – requester name.
//  Department – requester department.
//  Date       – inclusive start date, YYYY-MM-DD.
//  EndDate    – inclusive end date, YYYY-MM-DD; empty means single-day.
//  StartTime  – zero-padded 24h HH:MM start of the daily window.
//  EndTime    – zero-padded 24h HH:MM end of the daily window.
//  Purpose    – free-text reason for the reservation.
type Booking struct {
	ID         string `json:"id"`
	Block      string `json:"block"`
	Room       string `json:"room"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Date       string `json:"date"`
	EndDate    string `json:"endDate,omitempty"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Purpose    string `json:"purpose"`
}

// SpanEnd returns the inclusive end date of the booking's date range.  For
// single-day bookings EndDate is empty and the start date is the end date.
func (b Booking) SpanEnd() string {
	if b.EndDate != "" {
		return b.EndDate
	}
	return b.Date
}
