package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyTolerance(t *testing.T) {
	cases := []struct {
		name string
		raw  int
		tol  int
		want int
	}{
		{"zero raw", 0, 10, 0},
		{"inside band positive", 7, 10, 0},
		{"on band edge", 10, 10, 0},
		{"just outside band", 11, 10, 1},
		{"late", 25, 10, 15},
		{"inside band negative", -7, 10, 0},
		{"early", -25, 10, -15},
		{"no tolerance late", 5, 0, 5},
		{"no tolerance early", -5, 0, -5},
		{"no tolerance on time", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyTolerance(tc.raw, tc.tol))
		})
	}
}

func TestApplyToleranceProperties(t *testing.T) {
	for tol := 0; tol <= 15; tol++ {
		for raw := -60; raw <= 60; raw++ {
			got := ApplyTolerance(raw, tol)
			if abs(raw) <= tol {
				assert.Zero(t, got, "raw=%d tol=%d", raw, tol)
				continue
			}
			if raw > 0 {
				assert.Equal(t, raw-tol, got, "raw=%d tol=%d", raw, tol)
			} else {
				assert.Equal(t, raw+tol, got, "raw=%d tol=%d", raw, tol)
			}
			assert.Equal(t, abs(raw)-tol, abs(got), "magnitude raw=%d tol=%d", raw, tol)
		}
	}
}

func TestRawMinutesRounds(t *testing.T) {
	expected := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, RawMinutes(expected.Add(7*time.Minute+24*time.Second), expected))
	assert.Equal(t, 8, RawMinutes(expected.Add(7*time.Minute+40*time.Second), expected))
	assert.Equal(t, -7, RawMinutes(expected.Add(-(7*time.Minute+24*time.Second)), expected))
	assert.Equal(t, 0, RawMinutes(expected, expected))
}

func TestDeviationScenario(t *testing.T) {
	// Entry at 08:07 with an 08:00 schedule and 10 min tolerance is on time;
	// Exit at 18:25 against 18:00 is 15 min late net of tolerance.
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entry := TimeOfDay{Hour: 8}.On(day)
	exit := TimeOfDay{Hour: 18}.On(day)

	assert.Equal(t, 0, Deviation(day.Add(8*time.Hour+7*time.Minute), entry, 10))
	assert.Equal(t, 15, Deviation(day.Add(18*time.Hour+25*time.Minute), exit, 10))
	assert.Equal(t, 0, Deviation(day.Add(18*time.Hour+5*time.Minute), exit, 10))
}
