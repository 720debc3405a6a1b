package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/schedule"
)

func TestExpandDateSpan(t *testing.T) {
	days, err := schedule.ExpandDateSpan("2024-03-01", "2024-03-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, days)
}

func TestExpandDateSpanSingleDay(t *testing.T) {
	days, err := schedule.ExpandDateSpan("2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, days)

	days, err = schedule.ExpandDateSpan("2024-03-01", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-01"}, days)
}

func TestExpandDateSpanCrossesMonthBoundary(t *testing.T) {
	days, err := schedule.ExpandDateSpan("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	// 2024 is a leap year.
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"}, days)
}

func TestExpandDateSpanFallsBackOnBadInput(t *testing.T) {
	// The fallback span is always usable; the error reports the recovery.
	days, err := schedule.ExpandDateSpan("garbage", "2024-03-03")
	assert.Error(t, err)
	assert.Equal(t, []string{"garbage"}, days)

	days, err = schedule.ExpandDateSpan("2024-03-01", "garbage")
	assert.Error(t, err)
	assert.Equal(t, []string{"2024-03-01"}, days)

	days, err = schedule.ExpandDateSpan("2024-03-05", "2024-03-01")
	assert.Error(t, err)
	assert.Equal(t, []string{"2024-03-05"}, days)
}

func TestAggregateByDay(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Room: "A101", Date: "2024-03-02", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b2", Room: "A102", Date: "2024-03-01", EndDate: "2024-03-02", StartTime: "09:00", EndTime: "10:00"},
	}

	counts := schedule.AggregateByDay(bookings)
	assert.Equal(t, []schedule.DayCount{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-02", Count: 2},
	}, counts)
}

func TestAggregateByDayAttributesBadDatesToRawStart(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b1", Room: "A101", Date: "bogus", EndDate: "2024-03-03", StartTime: "09:00", EndTime: "10:00"},
	}

	counts := schedule.AggregateByDay(bookings)
	assert.Equal(t, []schedule.DayCount{{Date: "bogus", Count: 1}}, counts)
}

func TestLastDays(t *testing.T) {
	counts := []schedule.DayCount{
		{Date: "2024-03-01", Count: 1},
		{Date: "2024-03-02", Count: 2},
		{Date: "2024-03-03", Count: 3},
	}

	assert.Equal(t, counts[1:], schedule.LastDays(counts, 2))
	assert.Equal(t, counts, schedule.LastDays(counts, 10))
	assert.Nil(t, schedule.LastDays(counts, 0))
}
