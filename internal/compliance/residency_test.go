package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/compliance"
	"github.com/LocNguyenHuu/NomadSuite-sub001/internal/domain"
)

// TestTaxResidency_ScenarioThreeCountries runs the canonical scenario:
// Thailand Jan 1 – Feb 15, Vietnam Feb 15 – Mar 15, Japan Mar 15 – (open),
// evaluated on 2024-03-20.
//
// Inclusive counting in leap-year 2024: TH Jan 1 – Feb 15 is 46 days,
// VN Feb 15 – Mar 15 is 30 days (29-day February), JP Mar 15 – 20 is 6 days.
// Feb 15 and Mar 15 are travel days: presence in both countries, so each
// boundary day counts for both sides.
func TestTaxResidency_ScenarioThreeCountries(t *testing.T) {
	asOf := date(2024, time.March, 20)
	trips := []domain.Trip{
		trip("TH", date(2024, time.January, 1), date(2024, time.February, 15)),
		trip("VN", date(2024, time.February, 15), date(2024, time.March, 15)),
		openTrip("JP", date(2024, time.March, 15)),
	}

	got := compliance.TaxResidency(trips, asOf)

	require.Len(t, got, 3)
	assert.Equal(t, "TH", got[0].Country)
	assert.Equal(t, 46, got[0].Days)
	assert.Equal(t, "VN", got[1].Country)
	assert.Equal(t, 30, got[1].Days)
	assert.Equal(t, "JP", got[2].Country)
	assert.Equal(t, 6, got[2].Days)

	for _, cd := range got {
		assert.Equal(t, domain.AlertNone, cd.AlertLevel)
	}
}

// TestTaxResidency_TravelDayCountsForBothCountries pins the attribution rule
// for a boundary day shared by two adjacent trips: the traveler was present
// in both countries that day, so it contributes to both counts.
func TestTaxResidency_TravelDayCountsForBothCountries(t *testing.T) {
	asOf := date(2024, time.June, 1)
	trips := []domain.Trip{
		trip("TH", date(2024, time.January, 1), date(2024, time.January, 10)),
		trip("VN", date(2024, time.January, 10), date(2024, time.January, 20)),
	}

	got := compliance.TaxResidency(trips, asOf)

	require.Len(t, got, 2)
	assert.Equal(t, "VN", got[0].Country)
	assert.Equal(t, 11, got[0].Days, "Jan 10 counts for Vietnam")
	assert.Equal(t, "TH", got[1].Country)
	assert.Equal(t, 10, got[1].Days, "Jan 10 counts for Thailand too")
}

func TestTaxResidency_EmptyTripList(t *testing.T) {
	got := compliance.TaxResidency(nil, date(2024, time.June, 1))

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTaxResidency_AlertThresholds(t *testing.T) {
	asOf := date(2024, time.December, 1)

	// 149 days: none. Jan 1 + 148 = May 28.
	none := []domain.Trip{trip("TH", date(2024, time.January, 1), date(2024, time.May, 28))}
	got := compliance.TaxResidency(none, asOf)
	require.Len(t, got, 1)
	assert.Equal(t, 149, got[0].Days)
	assert.Equal(t, domain.AlertNone, got[0].AlertLevel)

	// 150 days: yellow.
	yellow := []domain.Trip{trip("TH", date(2024, time.January, 1), date(2024, time.May, 29))}
	got = compliance.TaxResidency(yellow, asOf)
	require.Len(t, got, 1)
	assert.Equal(t, 150, got[0].Days)
	assert.Equal(t, domain.AlertYellow, got[0].AlertLevel)

	// 183 days: red. Jan 1 + 182 = Jul 1.
	red := []domain.Trip{trip("TH", date(2024, time.January, 1), date(2024, time.July, 1))}
	got = compliance.TaxResidency(red, asOf)
	require.Len(t, got, 1)
	assert.Equal(t, 183, got[0].Days)
	assert.Equal(t, domain.AlertRed, got[0].AlertLevel)
}

// TestTaxResidency_OverlappingTripsDeduplicated verifies that two overlapping
// trips to the same country count each day once.
func TestTaxResidency_OverlappingTripsDeduplicated(t *testing.T) {
	asOf := date(2024, time.June, 1)
	trips := []domain.Trip{
		trip("TH", date(2024, time.January, 1), date(2024, time.January, 20)),
		trip("TH", date(2024, time.January, 10), date(2024, time.January, 31)),
	}

	got := compliance.TaxResidency(trips, asOf)

	// Jan 1 – Jan 31 as a set: 31 distinct days, not 20+22.
	require.Len(t, got, 1)
	assert.Equal(t, 31, got[0].Days)
}

// TestTaxResidency_Monotonicity verifies that adding a trip to a country
// never decreases its day count.
func TestTaxResidency_Monotonicity(t *testing.T) {
	asOf := date(2024, time.June, 1)
	base := []domain.Trip{trip("TH", date(2024, time.January, 1), date(2024, time.January, 31))}

	before := compliance.TaxResidency(base, asOf)
	require.Len(t, before, 1)

	extended := append(base, trip("TH", date(2024, time.March, 1), date(2024, time.March, 10)))
	after := compliance.TaxResidency(extended, asOf)
	require.Len(t, after, 1)

	assert.GreaterOrEqual(t, after[0].Days, before[0].Days)
}

// TestTaxResidency_Idempotent verifies that the same inputs produce identical
// output across calls; the engine holds no state.
func TestTaxResidency_Idempotent(t *testing.T) {
	asOf := date(2024, time.March, 20)
	trips := []domain.Trip{
		trip("TH", date(2024, time.January, 1), date(2024, time.February, 15)),
		openTrip("JP", date(2024, time.March, 15)),
	}

	first := compliance.TaxResidency(trips, asOf)
	second := compliance.TaxResidency(trips, asOf)

	assert.Equal(t, first, second)
}

func TestTaxResidency_MalformedTripSkipped(t *testing.T) {
	asOf := date(2024, time.June, 1)
	trips := []domain.Trip{
		trip("TH", date(2024, time.January, 1), date(2024, time.January, 31)),
		trip("TH", date(2024, time.March, 10), date(2024, time.March, 1)), // exit < entry
	}

	got := compliance.TaxResidency(trips, asOf)

	require.Len(t, got, 1)
	assert.Equal(t, 31, got[0].Days, "malformed trip must not contribute")
}

func TestTaxResidency_PriorYearTripsExcluded(t *testing.T) {
	asOf := date(2024, time.June, 1)
	trips := []domain.Trip{
		trip("TH", date(2023, time.June, 1), date(2023, time.August, 31)),
	}

	got := compliance.TaxResidency(trips, asOf)

	assert.Empty(t, got, "trips entirely outside the calendar year contribute nothing")
}

func TestTaxResidency_MessageMentionsCountryAndDays(t *testing.T) {
	asOf := date(2024, time.December, 1)
	trips := []domain.Trip{trip("TH", date(2024, time.January, 1), date(2024, time.July, 10))}

	got := compliance.TaxResidency(trips, asOf)

	require.Len(t, got, 1)
	assert.Equal(t, 192, got[0].Days)
	assert.Contains(t, got[0].Message, "Thailand")
	assert.Contains(t, got[0].Message, "192")
	assert.Contains(t, got[0].Message, "exceeds")
}
