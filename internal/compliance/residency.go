package compliance

import (
	"fmt"
	"sort"
	"time"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// TaxResidency evaluates the 183-day substantial-presence rule for every
// country in the trip list over the calendar year of the reference date.
//
// Day counts are distinct calendar days per country: overlapping trips to
// the same country never double-count a day. A travel day shared by two
// countries (exit from one, entry into the other) counts for both, because
// the traveler was physically present in both and tax authorities count
// presence per country, not exclusively. Malformed trips are skipped (see
// Warnings). The result is sorted descending by day count so
// the highest-risk country comes first; ties break alphabetically by code
// for deterministic output. An empty trip list yields an empty slice.
func TaxResidency(trips []domain.Trip, asOf time.Time) []domain.CountryDays {
	window := YearWindow(asOf)

	byCountry := map[string]map[int]struct{}{}
	for _, t := range trips {
		set, ok := byCountry[t.Country]
		if !ok {
			set = map[int]struct{}{}
			byCountry[t.Country] = set
		}
		addPresence(set, t, window, asOf)
	}

	result := []domain.CountryDays{}
	for country, set := range byCountry {
		days := len(set)
		if days == 0 {
			// All of the country's trips fall outside the year (or are malformed).
			continue
		}
		result = append(result, domain.CountryDays{
			Country:    country,
			Days:       days,
			AlertLevel: residencyAlert(days),
			Message:    residencyMessage(country, days, asOf.Year()),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Days != result[j].Days {
			return result[i].Days > result[j].Days
		}
		return result[i].Country < result[j].Country
	})
	return result
}

// residencyAlert classifies a day count against the 183-day rule.
func residencyAlert(days int) domain.AlertLevel {
	switch {
	case days >= ResidencyLimit:
		return domain.AlertRed
	case days >= ResidencyWarning:
		return domain.AlertYellow
	default:
		return domain.AlertNone
	}
}

// residencyMessage renders the human-readable status line for one country.
func residencyMessage(country string, days, year int) string {
	name := CountryName(country)
	if days >= ResidencyLimit {
		return fmt.Sprintf("%s: %d days in %d, exceeds the %d-day residency threshold by %d days",
			name, days, year, ResidencyLimit, days-ResidencyLimit)
	}
	return fmt.Sprintf("%s: %d days in %d, %d days before the %d-day residency threshold",
		name, days, year, ResidencyLimit-days, ResidencyLimit)
}
