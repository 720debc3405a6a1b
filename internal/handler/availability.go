package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/model"
	"github.com/iliyamo/classroom-booking/internal/schedule"
)

// roomStatusView is the per-room entry of the campus availability map.
type roomStatusView struct {
	ID       string          `json:"id"`
	Block    string          `json:"block"`
	Room     string          `json:"room"`
	Capacity int             `json:"capacity"`
	Status   schedule.Status `json:"status"`
}

// RoomsStatus handles GET /v1/rooms/status?date= and derives the occupancy
// status of every room in the inventory for one day (default today, UTC).
func (h *Handler) RoomsStatus(c echo.Context) error {
	date, reason := dateOrToday(c)
	if reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx := c.Request().Context()
	classrooms, err := h.Classrooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load classrooms"})
	}
	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}

	items := make([]roomStatusView, 0, len(classrooms))
	for _, room := range classrooms {
		items = append(items, roomStatusView{
			ID:       room.ID,
			Block:    room.Block,
			Room:     room.Room,
			Capacity: room.Capacity,
			Status:   schedule.RoomStatus(bookings, room.Room, date),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "items": items})
}

// RoomStatus handles GET /v1/rooms/:room/status?date= for a single room.
// Unknown room codes are 404 so typos don't masquerade as available rooms.
func (h *Handler) RoomStatus(c echo.Context) error {
	room := c.Param("room")
	date, reason := dateOrToday(c)
	if reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx := c.Request().Context()
	classrooms, err := h.Classrooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load classrooms"})
	}
	if !roomInInventory(classrooms, room) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "classroom not found"})
	}

	bookings, err := h.Bookings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room":   room,
		"date":   date,
		"status": schedule.RoomStatus(bookings, room, date),
	})
}

// RoomDayBookings handles GET /v1/rooms/:room/bookings?date= and lists the
// room's schedule for one day, sorted by start time.  The booking form uses
// it to show the day's existing reservations next to the inputs.
func (h *Handler) RoomDayBookings(c echo.Context) error {
	room := c.Param("room")
	date, reason := dateOrToday(c)
	if reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	day := schedule.BookingsOn(bookings, date)
	items := []model.Booking{}
	for _, b := range day {
		if b.Room == room {
			items = append(items, b)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"room": room, "date": date, "items": items})
}

func roomInInventory(classrooms []model.Classroom, room string) bool {
	for _, c := range classrooms {
		if c.Room == room {
			return true
		}
	}
	return false
}
