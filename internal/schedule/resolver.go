// internal/schedule/resolver.go
package schedule

import (
	"regexp"
	"strconv"
)

var siteDigits = regexp.MustCompile(`\d+`)

// SiteNumber extracts the first integer from a site label such as
// "Branch 03", "Branch 3" or a bare "4". Labels with no digits have no number.
func SiteNumber(site string) (int, bool) {
	m := siteDigits.FindString(site)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolver maps (site, event) to the expected clock time. Sites 3 and 4 run
// an alternate shift (Entry 07:30, Exit 17:30); every other site, including
// ones with no recognizable number, uses the configured default schedule.
//
// Both the recording and the correction flow go through this resolver, so the
// site override cannot drift between call sites.
type Resolver struct {
	Default []Entry
}

// ExpectedTime resolves the expected clock time for an event at a site.
// ok is false when the event is not part of the configured schedule.
func (r Resolver) ExpectedTime(site, event string) (TimeOfDay, bool) {
	def, ok := r.defaultTime(event)
	if !ok {
		return TimeOfDay{}, false
	}
	if n, hasNum := SiteNumber(site); hasNum && (n == 3 || n == 4) {
		if event == EventEntry {
			return TimeOfDay{Hour: 7, Minute: 30}, true
		}
		return TimeOfDay{Hour: 17, Minute: 30}, true
	}
	return def, true
}

func (r Resolver) defaultTime(event string) (TimeOfDay, bool) {
	for _, e := range r.Default {
		if e.Event == event {
			return e.At, true
		}
	}
	return TimeOfDay{}, false
}
