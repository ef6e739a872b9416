package compliance

import (
	"fmt"
	"time"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// Schengen evaluates the 90/180 rule over the trailing 180-day window ending
// on the reference date. Presence is aggregated as distinct calendar days
// across every Schengen-area trip, so hopping between member states (exit
// day in one equals entry day in the next) counts each day once; the area
// is a single zone for visa purposes.
//
// DaysUsed is not capped at 90: a value above the cap signals an overstay.
// The same trip list produces different results on different reference
// dates; the window rolls forward with asOf.
func Schengen(trips []domain.Trip, asOf time.Time) domain.SchengenStatus {
	window := TrailingWindow(asOf, SchengenWindowDays)

	set := map[int]struct{}{}
	for _, t := range trips {
		if !IsSchengen(t.Country) {
			continue
		}
		addPresence(set, t, window, asOf)
	}

	used := len(set)
	remaining := SchengenCap - used
	if remaining < 0 {
		remaining = 0
	}

	return domain.SchengenStatus{
		DaysUsed:      used,
		DaysRemaining: remaining,
		AlertLevel:    schengenAlert(used),
		Message:       schengenMessage(used, remaining),
	}
}

// schengenAlert classifies usage against the 90-day cap.
// Yellow starts above 80% of the budget.
func schengenAlert(used int) domain.AlertLevel {
	switch {
	case used >= SchengenCap:
		return domain.AlertRed
	case used > SchengenWarning:
		return domain.AlertYellow
	default:
		return domain.AlertNone
	}
}

// schengenMessage renders the human-readable status line.
func schengenMessage(used, remaining int) string {
	if used > SchengenCap {
		return fmt.Sprintf("Schengen area: %d days used in the current %d-day window, %d days over the %d-day limit",
			used, SchengenWindowDays, used-SchengenCap, SchengenCap)
	}
	if used == SchengenCap {
		return fmt.Sprintf("Schengen area: %d-day limit reached in the current %d-day window",
			SchengenCap, SchengenWindowDays)
	}
	return fmt.Sprintf("Schengen area: %d of %d days used in the current %d-day window, %d remaining",
		used, SchengenCap, SchengenWindowDays, remaining)
}
