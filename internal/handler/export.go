package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/classroom-booking/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBookings handles GET /v1/export/bookings.xlsx and streams the whole
// bookings collection as a spreadsheet download.
func (h *Handler) ExportBookings(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	if len(bookings) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no bookings to export"})
	}

	wb, err := export.BookingsWorkbook(bookings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not build workbook"})
	}
	defer func() { _ = wb.Close() }()
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not encode workbook"})
	}

	filename := fmt.Sprintf("Classroom_Bookings_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
