package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/schedule"
)

// AnalyticsSummary handles GET /v1/analytics/summary: collection totals,
// today's activity and the most used block and room.
func (h *Handler) AnalyticsSummary(c echo.Context) error {
	ctx := c.Request().Context()
	classrooms, err := h.Classrooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load classrooms"})
	}
	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}

	today := time.Now().UTC().Format("2006-01-02")
	return c.JSON(http.StatusOK, echo.Map{
		"total_classrooms":  len(classrooms),
		"total_bookings":    len(bookings),
		"todays_bookings":   len(schedule.BookingsOn(bookings, today)),
		"most_booked_block": schedule.TopEntry(schedule.CountByBlock(bookings)),
		"most_popular_room": schedule.TopEntry(schedule.CountByRoom(bookings)),
	})
}

// AnalyticsDaily handles GET /v1/analytics/daily?days=N and returns the
// booking count of the most recent N active days (default 7), each booking
// attributed to every day of its span.
func (h *Handler) AnalyticsDaily(c echo.Context) error {
	days := 7
	if s := c.QueryParam("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be a positive integer"})
		}
		days = n
	}

	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	items := schedule.LastDays(schedule.AggregateByDay(bookings), days)
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CalendarCounts handles GET /v1/calendar/counts?year=&month= and returns
// the per-day booking counts of one month; days without bookings are
// omitted and render as zero.
func (h *Handler) CalendarCounts(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "year must be a positive integer"})
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "month must be between 1 and 12"})
	}

	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}

	prefix := fmt.Sprintf("%04d-%02d", year, month)
	items := []schedule.DayCount{}
	for _, dc := range schedule.AggregateByDay(bookings) {
		if strings.HasPrefix(dc.Date, prefix) {
			items = append(items, dc)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
