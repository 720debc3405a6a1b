// Package export renders the bookings collection as an xlsx workbook for
// the admin download.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iliyamo/classroom-booking/internal/model"
)

const sheetName = "Bookings"

// Column order is fixed and part of the export contract.
var columns = []string{
	"Block", "Room", "Name", "Department",
	"Start Date", "End Date", "Start Time", "End Time", "Purpose",
}

var columnWidths = []float64{10, 10, 20, 20, 15, 15, 15, 15, 40}

// BookingsWorkbook builds a single-sheet workbook holding every booking,
// one row per record, with the fixed column order above.  Single-day
// bookings repeat the start date in the End Date column so the sheet never
// has holes.
func BookingsWorkbook(bookings []model.Booking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	for r, b := range bookings {
		values := []string{
			b.Block, b.Room, b.Name, b.Department,
			b.Date, b.SpanEnd(), b.StartTime, b.EndTime, b.Purpose,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}
	return f, nil
}
