package domain

// AlertLevel classifies how close a traveler is to breaching a residency or
// visa rule. The presentation layer maps these directly to UI colors.
type AlertLevel string

const (
	AlertNone   AlertLevel = "none"
	AlertYellow AlertLevel = "yellow"
	AlertRed    AlertLevel = "red"
)

// CountryDays is the per-country tax-residency view: cumulative days of
// presence in one country within the evaluation window (calendar year of the
// reference date), classified against the 183-day rule.
type CountryDays struct {
	Country    string     `json:"country"`
	Days       int        `json:"days"`
	AlertLevel AlertLevel `json:"alert_level"`
	Message    string     `json:"message"`
}

// SchengenStatus reports usage of the Schengen 90/180 allowance: distinct
// days of presence in the Schengen area within the trailing 180-day window
// ending on the reference date. DaysUsed is deliberately not capped at 90 so
// an overstay is visible; DaysRemaining never goes below zero.
type SchengenStatus struct {
	DaysUsed      int        `json:"days_used"`
	DaysRemaining int        `json:"days_remaining"`
	AlertLevel    AlertLevel `json:"alert_level"`
	Message       string     `json:"message"`
}

// CountrySummary aggregates all trips to one country.
type CountrySummary struct {
	Country     string `json:"country"`
	TotalDays   int    `json:"total_days"`
	Visits      int    `json:"visits"`
	LongestStay int    `json:"longest_stay"`
}

// TravelSummary is the cross-cutting statistics view over the full trip list,
// sorted so the most-visited country (by total days) comes first.
type TravelSummary struct {
	TotalCountries   int              `json:"total_countries"`
	CountrySummaries []CountrySummary `json:"country_summaries"`
}
