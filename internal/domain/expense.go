package domain

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a single business expense.
// AmountCents stores the amount in the currency's minor unit to avoid
// floating-point money arithmetic. Currency is an ISO-4217 code.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
