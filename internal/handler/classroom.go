package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/model"
)

// validateClassroomInput returns a rejection reason or "" for a well-formed
// classroom record.
func validateClassroomInput(c model.Classroom) string {
	if strings.TrimSpace(c.Block) == "" {
		return "block is required"
	}
	if strings.TrimSpace(c.Room) == "" {
		return "room is required"
	}
	if c.Capacity <= 0 {
		return "capacity must be positive"
	}
	return ""
}

// ListClassrooms handles GET /v1/classrooms.
func (h *Handler) ListClassrooms(c echo.Context) error {
	items, err := h.Classrooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load classrooms"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateClassroom handles POST /v1/classrooms.
func (h *Handler) CreateClassroom(c echo.Context) error {
	var body model.Classroom
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.ID = ""
	if reason := validateClassroomInput(body); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}
	created, err := h.Classrooms.Add(c.Request().Context(), body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create classroom"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateClassroom handles PUT /v1/classrooms/:id, replacing the record
// whole.  There is no foreign-key enforcement: renaming a room code leaves
// historical bookings pointing at the old code.
func (h *Handler) UpdateClassroom(c echo.Context) error {
	id := c.Param("id")
	var body model.Classroom
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.ID = id
	if reason := validateClassroomInput(body); reason != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx := c.Request().Context()
	if _, found, err := h.Classrooms.Find(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load classrooms"})
	} else if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "classroom not found"})
	}
	if err := h.Classrooms.Update(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update classroom"})
	}
	return c.JSON(http.StatusOK, body)
}

// DeleteClassroom handles DELETE /v1/classrooms/:id; idempotent like
// booking deletion.
func (h *Handler) DeleteClassroom(c echo.Context) error {
	if err := h.Classrooms.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete classroom"})
	}
	return c.NoContent(http.StatusNoContent)
}
