package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/queue"
	"github.com/iliyamo/classroom-booking/internal/schedule"
)

// validateBookingInput checks a booking candidate and returns a
// human-readable rejection reason, or "" when the input is well-formed.
// The checks run in the same order the booking form applies them: required
// fields, formats, time ordering, date ordering.
func validateBookingInput(b model.Booking) string {
	for _, f := range []struct{ name, v string }{
		{"block", b.Block},
		{"room", b.Room},
		{"name", b.Name},
		{"department", b.Department},
		{"date", b.Date},
		{"startTime", b.StartTime},
		{"endTime", b.EndTime},
		{"purpose", b.Purpose},
	} {
		if strings.TrimSpace(f.v) == "" {
			return f.name + " is required"
		}
	}
	if !schedule.ValidDate(b.Date) {
		return "invalid date, expected YYYY-MM-DD"
	}
	if b.EndDate != "" {
		if !schedule.ValidDate(b.EndDate) {
			return "invalid end date, expected YYYY-MM-DD"
		}
		if b.EndDate < b.Date {
			return "end date must not be before start date"
		}
	}
	if !schedule.ValidClock(b.StartTime) || !schedule.ValidClock(b.EndTime) {
		return "invalid time, expected HH:MM"
	}
	if b.StartTime >= b.EndTime {
		return "end time must be after start time"
	}
	return ""
}

// ListBookings handles GET /v1/bookings.  Optional query parameters: date
// narrows to bookings whose span covers that day (sorted by start time),
// q filters by case-insensitive substring over room, block, name,
// department and purpose.
func (h *Handler) ListBookings(c echo.Context) error {
	items, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	if date := c.QueryParam("date"); date != "" {
		if !schedule.ValidDate(date) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		}
		items = schedule.BookingsOn(items, date)
	}
	items = schedule.FilterBookings(items, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateBooking handles POST /v1/bookings.  The candidate passes field
// validation and the conflict check before it is persisted; a conflicting
// window is rejected with 409 and nothing is written.
func (h *Handler) CreateBooking(c echo.Context) error {
	var body model.Booking
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.ID = ""
	if reason := validateBookingInput(body); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx := c.Request().Context()
	existing, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	if schedule.HasConflict(existing, body.Room, body.Date, body.SpanEnd(), body.StartTime, body.EndTime, "") {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "time conflict: this room is already booked during the requested period",
		})
	}

	created, err := h.Bookings.Add(ctx, body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}
	h.publish(ctx, queue.ActionCreated, created)
	return c.JSON(http.StatusCreated, created)
}

// UpdateBooking handles PUT /v1/bookings/:id.  The replacement record is
// re-validated with the edited booking excluded from the conflict check, so
// a booking never conflicts with itself.
func (h *Handler) UpdateBooking(c echo.Context) error {
	id := c.Param("id")
	var body model.Booking
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.ID = id
	if reason := validateBookingInput(body); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx := c.Request().Context()
	if _, found, err := h.Bookings.Find(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	} else if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	existing, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	if schedule.HasConflict(existing, body.Room, body.Date, body.SpanEnd(), body.StartTime, body.EndTime, id) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "time conflict: this room is already booked during the requested period",
		})
	}

	if err := h.Bookings.Update(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update booking"})
	}
	h.publish(ctx, queue.ActionUpdated, body)
	return c.JSON(http.StatusOK, body)
}

// DeleteBooking handles DELETE /v1/bookings/:id.  Removal is idempotent:
// deleting an absent id still answers 204, and the cancellation event is
// only published when a record actually went away.
func (h *Handler) DeleteBooking(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()

	existing, found, err := h.Bookings.Find(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	if err := h.Bookings.Remove(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete booking"})
	}
	if found {
		h.publish(ctx, queue.ActionCancelled, existing)
	}
	return c.NoContent(http.StatusNoContent)
}
