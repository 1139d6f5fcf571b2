package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Founder is the authenticated principal resolved from the identity
// assertion. Founders are auto-provisioned on first request.
type Founder struct {
	FounderID string
	Email     string
	CreatedAt time.Time
}

// Agency is the single tenant every ledger record belongs to. One agency
// per founder; immutable after creation.
type Agency struct {
	AgencyID       string
	OwnerFounderID string
	Name           string
	BaseCurrency   string
	StartingCash   decimal.Decimal
	CreatedAt      time.Time
}
