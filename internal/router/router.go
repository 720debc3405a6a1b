// Package router defines how the HTTP routes of the admin API are
// registered.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/auth"
	"github.com/iliyamo/classroom-booking/internal/handler"
	"github.com/iliyamo/classroom-booking/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication.  Only the
// health check lives here.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the admin API.  Login is open (but rate limited);
// everything else under /v1 requires a valid ADMIN token.  The response
// cache runs after auth so only authorized responses ever enter it, and the
// rate limiter runs first so unauthenticated floods are cut off early.
func RegisterAPI(e *echo.Echo, h *handler.Handler, a *handler.AuthHandler, jwtSecret string, ratelimit, cache echo.MiddlewareFunc) {
	e.POST("/v1/auth/login", a.Login, ratelimit)

	v1 := e.Group("/v1")
	v1.Use(ratelimit)
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole(auth.AdminRole))
	v1.Use(cache)

	v1.GET("/me", a.Me)

	// Classroom inventory.
	v1.GET("/classrooms", h.ListClassrooms)
	v1.POST("/classrooms", h.CreateClassroom)
	v1.PUT("/classrooms/:id", h.UpdateClassroom)
	v1.DELETE("/classrooms/:id", h.DeleteClassroom)

	// Bookings.
	v1.GET("/bookings", h.ListBookings)
	v1.POST("/bookings", h.CreateBooking)
	v1.PUT("/bookings/:id", h.UpdateBooking)
	v1.DELETE("/bookings/:id", h.DeleteBooking)

	// Availability map and day schedules.
	v1.GET("/rooms/status", h.RoomsStatus)
	v1.GET("/rooms/:room/status", h.RoomStatus)
	v1.GET("/rooms/:room/bookings", h.RoomDayBookings)

	// Calendar and analytics.
	v1.GET("/calendar/counts", h.CalendarCounts)
	v1.GET("/analytics/summary", h.AnalyticsSummary)
	v1.GET("/analytics/daily", h.AnalyticsDaily)

	// Spreadsheet export.
	v1.GET("/export/bookings.xlsx", h.ExportBookings)
}
