// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ponto_backend/internal/schedule"
)

// Config carries the runtime settings the punch flows depend on: the local
// timezone, the ordered daily event schedule and the tolerance window. It is
// passed explicitly into the service so tests can inject their own values.
type Config struct {
	Location         *time.Location
	Schedule         []schedule.Entry
	ToleranceMinutes int
}

// Default returns the stock configuration: Sao Paulo time, Entry 08:00 /
// Exit 18:00, 10 minutes of tolerance.
func Default() *Config {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return &Config{
		Location: loc,
		Schedule: []schedule.Entry{
			{Event: schedule.EventEntry, At: schedule.TimeOfDay{Hour: 8}},
			{Event: schedule.EventExit, At: schedule.TimeOfDay{Hour: 18}},
		},
		ToleranceMinutes: 10,
	}
}

// Load builds the configuration from the environment, falling back to the
// defaults for anything unset or malformed. Recognized variables:
// APP_TIMEZONE, APP_TOLERANCE_MINUTES and APP_SCHEDULE
// (e.g. "Entry=08:00,Exit=18:00").
func Load() *Config {
	cfg := Default()

	if tz := os.Getenv("APP_TIMEZONE"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			cfg.Location = loc
		} else {
			log.Printf("invalid APP_TIMEZONE %q, keeping %s", tz, cfg.Location)
		}
	}

	if v := os.Getenv("APP_TOLERANCE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ToleranceMinutes = n
		} else {
			log.Printf("invalid APP_TOLERANCE_MINUTES %q, keeping %d", v, cfg.ToleranceMinutes)
		}
	}

	if v := os.Getenv("APP_SCHEDULE"); v != "" {
		if entries, err := ParseSchedule(v); err == nil {
			cfg.Schedule = entries
		} else {
			log.Printf("invalid APP_SCHEDULE %q: %v", v, err)
		}
	}

	return cfg
}

// ParseSchedule parses an ordered "NAME=HH:MM,NAME=HH:MM" event list.
func ParseSchedule(s string) ([]schedule.Entry, error) {
	var entries []schedule.Entry
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("entry %q: want NAME=HH:MM", part)
		}
		at, err := schedule.ParseTimeOfDay(value)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", part, err)
		}
		entries = append(entries, schedule.Entry{Event: strings.TrimSpace(name), At: at})
	}
	if len(entries) == 0 {
		return nil, errors.New("empty schedule")
	}
	return entries, nil
}
