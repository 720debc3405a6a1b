package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/iliyamo/classroom-booking/internal/model"
)

// ExpandDateSpan lists every calendar date from date to endDate inclusive,
// ascending.  An empty endDate means a single-day span.
//
// The function is total: when either bound fails to parse (or the range is
// inverted) it falls back to a one-element span holding the raw start date
// and returns a non-nil error describing the recovery.  The returned span
// is always usable; the error lets callers distinguish a clean parse from a
// recovered one and log it if they care.
func ExpandDateSpan(date, endDate string) ([]string, error) {
	if endDate == "" {
		endDate = date
	}
	start, err := time.Parse(dateLayout, date)
	if err != nil {
		return []string{date}, fmt.Errorf("expand span: bad start date %q: %w", date, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return []string{date}, fmt.Errorf("expand span: bad end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return []string{date}, fmt.Errorf("expand span: end %q before start %q", endDate, date)
	}

	var out []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dateLayout))
	}
	return out, nil
}

// DayCount pairs a calendar date with the number of bookings touching it.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AggregateByDay counts bookings per calendar date: each booking increments
// the counter of every date in its expanded span.  The result is ascending
// by date string, which over YYYY-MM-DD is chronological order.  Unparseable
// spans attribute the booking to its raw start date via the expansion
// fallback, so malformed records still show up somewhere.
func AggregateByDay(bookings []model.Booking) []DayCount {
	counts := map[string]int{}
	for _, b := range bookings {
		days, _ := ExpandDateSpan(b.Date, b.EndDate)
		for _, d := range days {
			counts[d]++
		}
	}

	out := make([]DayCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DayCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LastDays returns at most n trailing entries of an ascending day-count
// sequence: the most recent n active days.
func LastDays(counts []DayCount, n int) []DayCount {
	if n <= 0 {
		return nil
	}
	if len(counts) > n {
		return counts[len(counts)-n:]
	}
	return counts
}
