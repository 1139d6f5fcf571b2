package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostType classifies a cost entry as structural or activity-driven.
type CostType string

const (
	CostTypeFixed    CostType = "fixed"
	CostTypeVariable CostType = "variable"
)

// CostCategory buckets cost entries for the breakdown analyzer.
type CostCategory string

const (
	CategoryPeople CostCategory = "people"
	CategoryTools  CostCategory = "tools"
	CategoryOther  CostCategory = "other"
)

// CashSnapshot records the agency's cash balance for one calendar day.
// At most one snapshot per agency per day; a second insert for the same
// day is a conflict, never an overwrite.
type CashSnapshot struct {
	SnapshotID  string
	AgencyID    string
	Date        string // YYYY-MM-DD, agency-local
	CashBalance decimal.Decimal
	CreatedAt   time.Time
}

// RevenueEntry is an append-only record of money earned.
type RevenueEntry struct {
	RevenueID  string
	AgencyID   string
	Amount     decimal.Decimal
	Source     string
	RecordedAt time.Time
}

// CostEntry is an append-only record of money spent.
type CostEntry struct {
	CostID     string
	AgencyID   string
	Amount     decimal.Decimal
	Type       CostType
	Category   CostCategory
	Label      string
	RecordedAt time.Time
}

// Client is an append-only registry entry; clients are never deleted.
type Client struct {
	ClientID  string
	AgencyID  string
	Name      string
	CreatedAt time.Time
}

// Retainer is a monthly commitment from a client. One active retainer per
// client; superseding deactivates the prior one rather than deleting it.
type Retainer struct {
	RetainerID    string
	AgencyID      string
	ClientID      string
	MonthlyAmount decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
}

// TimeEntry logs worked hours. A nil ClientID means internal,
// non-billable work; both kinds count toward capacity load.
type TimeEntry struct {
	EntryID    string
	AgencyID   string
	ClientID   *string
	Hours      decimal.Decimal
	RecordedAt time.Time
}
