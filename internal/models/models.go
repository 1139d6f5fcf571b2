// Package models holds the database-layer row representations for
// entities the repositories rehydrate whole. They are kept separate from
// the domain types so storage concerns never leak into the core; tables
// that are only written to or read back as aggregates need no row model.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Agency struct {
	AgencyID       string
	OwnerFounderID string
	Name           string
	BaseCurrency   string
	StartingCash   decimal.Decimal
	CreatedAt      time.Time
}

type Client struct {
	ClientID  string
	AgencyID  string
	Name      string
	CreatedAt time.Time
}
