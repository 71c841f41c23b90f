// internal/report/excel.go
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetDaily = "Daily Report"
	SheetRaw   = "Raw Event Log"
)

var dailyHeaders = []string{
	"Date", "Employee Code", "Employee Name", "Company", "Tax ID",
	"Entry", "Exit", "Total Hours Worked", "Annotations",
}

var rawHeaders = []string{
	"ID", "Code", "Name", "Date", "Time", "Event", "Deviation (min)",
	"Annotation", "Company", "Tax ID", "Sector", "Site",
}

// Excel builds the styled attendance workbook: a title block plus the daily
// pivot on one sheet and the raw punch log on a second, with auto-fit
// column widths.
func Excel(daily []DailyRow, raw []PunchRow, companyName, taxID string, from, to time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetDaily); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetRaw); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 16, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	infoStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 12, Bold: true},
	})
	if err != nil {
		return nil, err
	}

	if err := f.MergeCell(SheetDaily, "A1", "D1"); err != nil {
		return nil, err
	}
	_ = f.SetCellValue(SheetDaily, "A1", "Attendance Report by Period")
	_ = f.SetCellStyle(SheetDaily, "A1", "A1", titleStyle)

	_ = f.SetCellValue(SheetDaily, "A2", "Company:")
	_ = f.SetCellValue(SheetDaily, "B2", companyName)
	_ = f.SetCellStyle(SheetDaily, "A2", "A2", infoStyle)
	if taxID != "" {
		_ = f.SetCellValue(SheetDaily, "C2", "Tax ID:")
		_ = f.SetCellValue(SheetDaily, "D2", taxID)
		_ = f.SetCellStyle(SheetDaily, "C2", "C2", infoStyle)
	}
	_ = f.SetCellValue(SheetDaily, "A3", "Period:")
	_ = f.SetCellValue(SheetDaily, "B3", from.Format("02/01/2006")+" to "+to.Format("02/01/2006"))
	_ = f.SetCellStyle(SheetDaily, "A3", "A3", infoStyle)

	dailyWidths := make([]float64, len(dailyHeaders))
	if err := writeRow(f, SheetDaily, 5, toAny(dailyHeaders), dailyWidths); err != nil {
		return nil, err
	}
	for i, row := range daily {
		values := []any{
			row.Date, row.Code, row.Name, row.CompanyName, row.TaxID,
			row.Entry, row.Exit, row.WorkedHours, row.Annotations,
		}
		if err := writeRow(f, SheetDaily, 6+i, values, dailyWidths); err != nil {
			return nil, err
		}
	}
	if err := applyWidths(f, SheetDaily, dailyWidths); err != nil {
		return nil, err
	}

	rawWidths := make([]float64, len(rawHeaders))
	if err := writeRow(f, SheetRaw, 1, toAny(rawHeaders), rawWidths); err != nil {
		return nil, err
	}
	for i, row := range raw {
		annotation := ""
		if row.Annotation != nil {
			annotation = *row.Annotation
		}
		values := []any{
			row.ID, row.Code, row.Name, row.Date, row.Time, row.Event,
			row.DeviationMin, annotation, row.CompanyName, row.TaxID,
			row.Sector, row.Site,
		}
		if err := writeRow(f, SheetRaw, 2+i, values, rawWidths); err != nil {
			return nil, err
		}
	}
	if err := applyWidths(f, SheetRaw, rawWidths); err != nil {
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any, widths []float64) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if w := float64(len(fmt.Sprint(v))) + 2; w > widths[i] {
			widths[i] = w
		}
	}
	return nil
}

func applyWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
