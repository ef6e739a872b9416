package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer in the CRM.
// Country is informational (where the client is based) and is free text;
// unlike Trip.Country it carries no compliance semantics.
type Client struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Company   string    `json:"company,omitempty"`
	Country   string    `json:"country,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
