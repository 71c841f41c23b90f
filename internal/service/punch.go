// internal/service/punch.go
package service

import (
	"errors"
	"fmt"
	"time"

	"ponto_backend/internal/models"
	"ponto_backend/internal/schedule"

	"gorm.io/gorm"
)

var (
	errPunchNotFound = errors.New("punch not found")
	errBadTime       = errors.New("invalid time format")
	errNoChange      = errors.New("no change")
)

// NextEvent returns the next expected daily event for an employee, based on
// how many punches exist for today in the configured timezone. ok is false
// when the day's events are exhausted.
func (s *Service) NextEvent(nationalID string) (event string, ok bool, err error) {
	return s.nextEvent(s.DB, nationalID)
}

func (s *Service) nextEvent(db *gorm.DB, nationalID string) (string, bool, error) {
	today := s.now().Format("2006-01-02")
	var n int64
	if err := db.Model(&models.Punch{}).
		Where("employee_id = ? AND date = ?", nationalID, today).
		Count(&n).Error; err != nil {
		return "", false, err
	}
	if int(n) >= len(s.Cfg.Schedule) {
		return "", false, nil
	}
	return s.Cfg.Schedule[n].Event, true, nil
}

// siteFor returns the employee's site assignment. A missing employee row or
// empty site means no site on file and the default schedule applies.
func siteFor(db *gorm.DB, nationalID string) (string, error) {
	var emp models.Employee
	err := db.Select("site").First(&emp, "national_id = ?", nationalID).Error
	if err == nil {
		return emp.Site, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return "", err
}

// RecordPunch records the employee's next clock event against the current
// instant, with the count, site lookup and insert in one transaction. When
// the day's events are exhausted no row is written and a warning comes back.
func (s *Service) RecordPunch(nationalID, name string) (string, Severity) {
	now := s.now()

	msg, sev := "", SeveritySuccess
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		event, ok, err := s.nextEvent(tx, nationalID)
		if err != nil {
			return err
		}
		if !ok {
			msg, sev = "Today's punches are already fully recorded.", SeverityWarning
			return nil
		}

		site, err := siteFor(tx, nationalID)
		if err != nil {
			return err
		}

		expectedAt, ok := s.Resolver.ExpectedTime(site, event)
		if !ok {
			msg, sev = fmt.Sprintf("No schedule configured for event %q.", event), SeverityError
			return nil
		}

		expected := expectedAt.On(now)
		raw := schedule.RawMinutes(now, expected)
		dev := schedule.ApplyTolerance(raw, s.Cfg.ToleranceMinutes)

		punch := models.Punch{
			ID:           nationalID + "-" + now.Format(time.RFC3339Nano),
			EmployeeID:   nationalID,
			EmployeeName: name,
			Date:         now.Format("2006-01-02"),
			Time:         now.Format("15:04:05"),
			Event:        event,
			DeviationMin: dev,
		}
		if err := tx.Create(&punch).Error; err != nil {
			return err
		}

		msg, sev = punchMessage(event, name, now, raw, dev), SeveritySuccess
		return nil
	})
	if err != nil {
		return "Database error: " + err.Error(), SeverityError
	}
	return msg, sev
}

func punchMessage(event, name string, at time.Time, raw, dev int) string {
	msg := fmt.Sprintf("%q recorded for %s at %s", event, name, at.Format("15:04:05"))
	switch {
	case dev > 0:
		msg += fmt.Sprintf(" (%d min late)", dev)
	case dev < 0:
		msg += fmt.Sprintf(" (%d min early)", -dev)
	case raw != 0:
		msg += " (within tolerance, recorded as on time)"
	default:
		msg += " (right on time)"
	}
	return msg + "."
}

// CorrectPunch updates an existing punch's recorded time and/or annotation.
// A new time re-resolves the schedule for the punch's original event and
// site and recomputes the deviation on the punch's stored date. Everything
// commits in one transaction or not at all.
func (s *Service) CorrectPunch(id string, newTime, newAnnotation *string) (string, Severity) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var punch models.Punch
		if err := tx.First(&punch, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errPunchNotFound
			}
			return err
		}

		var changed int64

		if newAnnotation != nil {
			res := tx.Model(&models.Punch{}).Where("id = ?", id).
				Update("annotation", *newAnnotation)
			if res.Error != nil {
				return res.Error
			}
			changed += res.RowsAffected
		}

		if newTime != nil {
			parsed, err := time.Parse("15:04:05", *newTime)
			if err != nil {
				return errBadTime
			}

			site, err := siteFor(tx, punch.EmployeeID)
			if err != nil {
				return err
			}

			expectedAt, ok := s.Resolver.ExpectedTime(site, punch.Event)
			if !ok {
				return fmt.Errorf("no schedule configured for event %q", punch.Event)
			}

			day, err := time.ParseInLocation("2006-01-02", punch.Date, s.Cfg.Location)
			if err != nil {
				return fmt.Errorf("stored date %q: %w", punch.Date, err)
			}

			// Both instants on the punch's stored date, seconds zeroed.
			expected := expectedAt.On(day)
			actual := schedule.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}.On(day)
			dev := schedule.Deviation(actual, expected, s.Cfg.ToleranceMinutes)

			res := tx.Model(&models.Punch{}).Where("id = ?", id).
				Updates(map[string]any{"time": *newTime, "deviation_min": dev})
			if res.Error != nil {
				return res.Error
			}
			changed += res.RowsAffected
		}

		if changed == 0 {
			return errNoChange
		}
		return nil
	})

	switch {
	case err == nil:
		return "Punch updated.", SeveritySuccess
	case errors.Is(err, errPunchNotFound):
		return "Punch not found.", SeverityError
	case errors.Is(err, errBadTime):
		return "Invalid time format. Use HH:MM:SS.", SeverityError
	case errors.Is(err, errNoChange):
		return "Nothing was changed.", SeverityWarning
	default:
		return "Database error: " + err.Error(), SeverityError
	}
}
