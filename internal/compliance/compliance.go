// Package compliance implements the travel-compliance engine: pure functions
// over a trip list computing per-country tax-residency day counts, Schengen
// 90/180 rolling-window status, and travel summary statistics.
//
// The package has ZERO dependencies on HTTP, database, or clocks; the
// reference date ("as of") is always injected by the caller, pinned to a UTC
// calendar date, so results are deterministic and trivially testable.
package compliance

import (
	"fmt"
	"time"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// Thresholds for the two compliance rules. Day counts are always calendar
// days, inclusive of both entry and exit day.
const (
	// ResidencyLimit is the 183-day substantial-presence threshold evaluated
	// over the calendar year of the reference date.
	ResidencyLimit = 183

	// ResidencyWarning is the day count at which a country turns yellow.
	ResidencyWarning = 150

	// SchengenCap is the maximum days allowed in any trailing 180-day window.
	SchengenCap = 90

	// SchengenWindowDays is the length of the Schengen rolling window.
	SchengenWindowDays = 180

	// SchengenWarning is the day count above which the status turns yellow
	// (80% of the 90-day budget).
	SchengenWarning = 72
)

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// YearWindow returns the calendar year containing the reference date,
// Jan 1 through Dec 31.
func YearWindow(asOf time.Time) Window {
	y := asOf.Year()
	return Window{
		Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// TrailingWindow returns the window of `days` calendar days ending on the
// reference date, inclusive. TrailingWindow(asOf, 180) spans
// [asOf−179d, asOf].
func TrailingWindow(asOf time.Time, days int) Window {
	end := DateOnly(asOf)
	return Window{Start: end.AddDate(0, 0, -(days - 1)), End: end}
}

// Days returns the window length in calendar days, inclusive of both ends.
func (w Window) Days() int {
	return daysBetween(DateOnly(w.Start), DateOnly(w.End)) + 1
}

// DateOnly strips the time-of-day component and pins the result to UTC.
// All engine arithmetic runs on these normalized dates so the timezone of
// the caller's clock can never shift a day boundary.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OverlapDays returns the number of calendar days the trip overlaps the
// window, inclusive of both boundary days. Open trips run through the
// reference date. Returns 0 when there is no overlap and 0 for malformed
// trips (exit before entry); callers surface those via Warnings.
func OverlapDays(trip domain.Trip, w Window, asOf time.Time) int {
	entry := DateOnly(trip.EntryDate)
	exit := tripExit(trip, asOf)
	if exit.Before(entry) {
		return 0
	}

	start := maxDate(entry, DateOnly(w.Start))
	end := minDate(exit, DateOnly(w.End))
	if end.Before(start) {
		return 0
	}
	return daysBetween(start, end) + 1
}

// Warnings reports data-integrity problems in the trip list that the
// evaluators silently skip: trips whose exit date precedes their entry date.
// An empty slice means every trip is well formed.
func Warnings(trips []domain.Trip) []string {
	warnings := []string{}
	for _, t := range trips {
		if !validTrip(t) {
			warnings = append(warnings, fmt.Sprintf(
				"trip %s (%s): exit date %s precedes entry date %s; excluded from calculations",
				t.ID, t.Country,
				t.ExitDate.Format(time.DateOnly), t.EntryDate.Format(time.DateOnly)))
		}
	}
	return warnings
}

// validTrip reports whether the trip can contribute to day counts.
func validTrip(t domain.Trip) bool {
	return t.ExitDate == nil || !DateOnly(*t.ExitDate).Before(DateOnly(t.EntryDate))
}

// tripExit returns the trip's effective exit date: the recorded exit, or the
// reference date for open trips.
func tripExit(t domain.Trip, asOf time.Time) time.Time {
	if t.ExitDate == nil {
		return DateOnly(asOf)
	}
	return DateOnly(*t.ExitDate)
}

// addPresence marks every day the trip overlaps the window in the set.
// Days are keyed as day counts since the Unix epoch, which makes the set
// cheap and avoids time.Time map-key pitfalls.
//
// Summing a per-day set instead of per-trip durations is what prevents
// double-counting within one set when trips overlap or adjacent trips share
// a boundary day (exit of one trip equals entry of the next). Each evaluator
// chooses the set granularity: per country for residency, one set for the
// whole Schengen area.
func addPresence(set map[int]struct{}, trip domain.Trip, w Window, asOf time.Time) {
	if !validTrip(trip) {
		return
	}
	entry := DateOnly(trip.EntryDate)
	exit := tripExit(trip, asOf)

	start := maxDate(entry, DateOnly(w.Start))
	end := minDate(exit, DateOnly(w.End))
	if end.Before(start) {
		return
	}
	first := epochDays(start)
	last := epochDays(end)
	for d := first; d <= last; d++ {
		set[d] = struct{}{}
	}
}

// epochDays converts a normalized date to whole days since the Unix epoch.
func epochDays(t time.Time) int {
	return int(t.Unix() / 86400)
}

// daysBetween returns the number of whole days from a to b (b >= a).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
