// Package domain contains the core data types for the NomadSuite backend.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (compliance, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a continuous stay in a single country.
// The traveler is present on both boundary days: a trip entered and exited on
// the same date counts as one day. ExitDate is nil while the trip is ongoing.
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Country   string     `json:"country"` // ISO-3166-1 alpha-2, upper case
	EntryDate time.Time  `json:"entry_date"`
	ExitDate  *time.Time `json:"exit_date,omitempty"` // nil when still in the country
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
