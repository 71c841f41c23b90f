// internal/report/report.go
package report

import (
	"fmt"
	"time"

	"ponto_backend/internal/models"
	"ponto_backend/internal/schedule"

	"gorm.io/gorm"
)

// PunchRow is one flat punch-log line joined with employee and company data.
type PunchRow struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Event        string  `json:"event"`
	DeviationMin int     `json:"deviation_min"`
	Annotation   *string `json:"annotation,omitempty"`
	CompanyName  string  `json:"company_name"`
	TaxID        string  `json:"tax_id"`
	Sector       string  `json:"sector"`
	Site         string  `json:"site"`
}

// ListPunches returns the full punch log, oldest first.
func ListPunches(db *gorm.DB) ([]PunchRow, error) {
	var rows []PunchRow
	err := db.Model(&models.Punch{}).
		Select(`punches.id, employees.code, punches.employee_name AS name, punches.date,
			punches.time, punches.event, punches.deviation_min, punches.annotation,
			companies.name AS company_name, companies.tax_id,
			employees.type AS sector, employees.site`).
		Joins("JOIN employees ON punches.employee_id = employees.national_id").
		Joins("LEFT JOIN companies ON employees.company_id = companies.id").
		Order("punches.date, punches.time").
		Scan(&rows).Error
	return rows, err
}

// DailyRow is one employee-day of the pivoted report.
type DailyRow struct {
	Date        string `json:"date"` // DD/MM/YYYY
	Code        string `json:"code"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	Entry       string `json:"entry"` // HH:MM:SS, empty when missing
	Exit        string `json:"exit"`
	WorkedHours string `json:"worked_hours"` // HH:MM
	Annotations string `json:"annotations"`
}

// Daily pivots the flat punch log into one row per employee-day with Entry
// and Exit columns, the worked-hours span between them, and the day's
// distinct annotations joined with " | ". The first punch wins per event.
func Daily(rows []PunchRow) []DailyRow {
	type key struct{ date, code string }

	index := map[key]*DailyRow{}
	annSeen := map[key]map[string]bool{}
	var order []key

	for _, r := range rows {
		k := key{r.Date, r.Code}
		row, ok := index[k]
		if !ok {
			row = &DailyRow{
				Date:        displayDate(r.Date),
				Code:        r.Code,
				Name:        r.Name,
				CompanyName: r.CompanyName,
				TaxID:       r.TaxID,
			}
			index[k] = row
			annSeen[k] = map[string]bool{}
			order = append(order, k)
		}

		switch r.Event {
		case schedule.EventEntry:
			if row.Entry == "" {
				row.Entry = r.Time
			}
		case schedule.EventExit:
			if row.Exit == "" {
				row.Exit = r.Time
			}
		}

		if r.Annotation != nil && *r.Annotation != "" && !annSeen[k][*r.Annotation] {
			annSeen[k][*r.Annotation] = true
			if row.Annotations != "" {
				row.Annotations += " | "
			}
			row.Annotations += *r.Annotation
		}
	}

	out := make([]DailyRow, 0, len(order))
	for _, k := range order {
		row := index[k]
		row.WorkedHours = workedHours(row.Entry, row.Exit)
		out = append(out, *row)
	}
	return out
}

// workedHours formats Exit - Entry as HH:MM; a missing or inverted pair
// collapses to 00:00.
func workedHours(entry, exit string) string {
	in, errIn := time.Parse("15:04:05", entry)
	out, errOut := time.Parse("15:04:05", exit)
	if errIn != nil || errOut != nil {
		return "00:00"
	}
	d := out.Sub(in)
	if d < 0 {
		return "00:00"
	}
	total := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func displayDate(stored string) string {
	d, err := time.Parse("2006-01-02", stored)
	if err != nil {
		return stored
	}
	return d.Format("02/01/2006")
}
