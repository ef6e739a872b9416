package compliance

import (
	"sort"
	"time"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// allTime is a window wide enough to cover any plausible trip history, used
// by Summarize which has no evaluation window of its own. The 1970 floor
// keeps epoch-day keys non-negative; a trip entered before the Unix epoch
// would be clamped, which no travel log for a living traveler can hit.
var allTime = Window{
	Start: time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
}

// Summarize derives cross-cutting statistics from the full trip list:
// distinct countries visited, and per country the total distinct days of
// presence (open trips counted through the reference date), number of
// visits, and the longest single stay. Sorted descending by total days so
// the most-visited country comes first; ties break alphabetically.
// Malformed trips are skipped (see Warnings).
func Summarize(trips []domain.Trip, asOf time.Time) domain.TravelSummary {
	type acc struct {
		days    map[int]struct{}
		visits  int
		longest int
	}

	byCountry := map[string]*acc{}
	for _, t := range trips {
		if !validTrip(t) {
			continue
		}
		a, ok := byCountry[t.Country]
		if !ok {
			a = &acc{days: map[int]struct{}{}}
			byCountry[t.Country] = a
		}
		a.visits++
		addPresence(a.days, t, allTime, asOf)
		if d := OverlapDays(t, allTime, asOf); d > a.longest {
			a.longest = d
		}
	}

	summaries := []domain.CountrySummary{}
	for country, a := range byCountry {
		summaries = append(summaries, domain.CountrySummary{
			Country:     country,
			TotalDays:   len(a.days),
			Visits:      a.visits,
			LongestStay: a.longest,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalDays != summaries[j].TotalDays {
			return summaries[i].TotalDays > summaries[j].TotalDays
		}
		return summaries[i].Country < summaries[j].Country
	})

	return domain.TravelSummary{
		TotalCountries:   len(summaries),
		CountrySummaries: summaries,
	}
}
