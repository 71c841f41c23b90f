// internal/schedule/schedule.go
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Recognized daily event names.
const (
	EventEntry = "Entry"
	EventExit  = "Exit"
)

// TimeOfDay is a clock time with minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On anchors the clock time on the given day, seconds zeroed.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Entry pairs a daily event name with its expected clock time. The position
// of an Entry in a schedule slice is the punch sequence for a day.
type Entry struct {
	Event string
	At    TimeOfDay
}
