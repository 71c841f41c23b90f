package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultResolver() Resolver {
	return Resolver{Default: []Entry{
		{Event: EventEntry, At: TimeOfDay{Hour: 8}},
		{Event: EventExit, At: TimeOfDay{Hour: 18}},
	}}
}

func TestSiteNumber(t *testing.T) {
	cases := []struct {
		site string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{"4", 4, true},
		{"Branch 03", 3, true},
		{"Branch 3", 3, true},
		{"Branch 04", 4, true},
		{"Branch 12", 12, true},
		{"Headquarters", 0, false},
		{"", 0, false},
		{"Unidentified", 0, false},
	}
	for _, tc := range cases {
		n, ok := SiteNumber(tc.site)
		assert.Equal(t, tc.ok, ok, "site %q", tc.site)
		if tc.ok {
			assert.Equal(t, tc.want, n, "site %q", tc.site)
		}
	}
}

func TestExpectedTimeAlternateShiftSites(t *testing.T) {
	r := defaultResolver()
	for _, site := range []string{"3", "4", "Branch 03", "Branch 3", "Branch 04", "Branch 4"} {
		entry, ok := r.ExpectedTime(site, EventEntry)
		require.True(t, ok, "site %q", site)
		assert.Equal(t, TimeOfDay{Hour: 7, Minute: 30}, entry, "site %q", site)

		exit, ok := r.ExpectedTime(site, EventExit)
		require.True(t, ok, "site %q", site)
		assert.Equal(t, TimeOfDay{Hour: 17, Minute: 30}, exit, "site %q", site)
	}
}

func TestExpectedTimeDefaultSites(t *testing.T) {
	r := defaultResolver()
	for _, site := range []string{"", "Headquarters", "Branch 02", "Branch 2", "Unidentified"} {
		entry, ok := r.ExpectedTime(site, EventEntry)
		require.True(t, ok, "site %q", site)
		assert.Equal(t, TimeOfDay{Hour: 8}, entry, "site %q", site)

		exit, ok := r.ExpectedTime(site, EventExit)
		require.True(t, ok, "site %q", site)
		assert.Equal(t, TimeOfDay{Hour: 18}, exit, "site %q", site)
	}
}

func TestExpectedTimeUnknownEvent(t *testing.T) {
	r := defaultResolver()
	_, ok := r.ExpectedTime("Branch 03", "Lunch")
	assert.False(t, ok)
}

func TestParseTimeOfDay(t *testing.T) {
	at, err := ParseTimeOfDay("07:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 7, Minute: 30}, at)
	assert.Equal(t, "07:30", at.String())

	_, err = ParseTimeOfDay("7h30")
	assert.Error(t, err)
}
