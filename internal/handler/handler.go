// Package handler implements the HTTP handlers of the admin API.  Handlers
// bind and validate input, delegate reads and mutations to the repositories
// and the schedule validator, and map failures onto HTTP statuses:
// validation failures are 4xx rejections with a human-readable reason,
// conflicts are 409, store errors are 500.
package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/queue"
	"github.com/iliyamo/classroom-booking/internal/repository"
	"github.com/iliyamo/classroom-booking/internal/schedule"
	queue_publisher "github.com/iliyamo/classroom-booking/internal/service"
)

// Handler bundles the repositories and collaborators the API depends on.
type Handler struct {
	Bookings   *repository.BookingRepo
	Classrooms *repository.ClassroomRepo

	// Publish sends a booking lifecycle event to the broker.  It defaults
	// to the RabbitMQ publisher; tests inject a recorder.  Publishing is
	// best-effort and never fails a request.
	Publish func(ctx context.Context, ev queue.BookingEvent) error
}

// New constructs a Handler wired to the RabbitMQ publisher.
func New(bookings *repository.BookingRepo, classrooms *repository.ClassroomRepo) *Handler {
	return &Handler{
		Bookings:   bookings,
		Classrooms: classrooms,
		Publish:    queue_publisher.PublishBookingEvent,
	}
}

// publish emits a booking event without affecting the request outcome; the
// publisher logs its own failures.
func (h *Handler) publish(ctx context.Context, action string, b model.Booking) {
	if h.Publish == nil {
		return
	}
	_ = h.Publish(ctx, queue.BookingEvent{
		Action:     action,
		BookingID:  b.ID,
		Block:      b.Block,
		Room:       b.Room,
		Name:       b.Name,
		Department: b.Department,
		Date:       b.Date,
		EndDate:    b.EndDate,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Purpose:    b.Purpose,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// dateOrToday returns the validated date query parameter, defaulting to
// today's UTC date when absent.  The second return value carries a
// rejection reason for malformed input.
func dateOrToday(c echo.Context) (string, string) {
	date := c.QueryParam("date")
	if date == "" {
		return time.Now().UTC().Format("2006-01-02"), ""
	}
	if !schedule.ValidDate(date) {
		return "", "invalid date, expected YYYY-MM-DD"
	}
	return date, ""
}
