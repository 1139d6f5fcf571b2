// Package views holds the read-side composition types the services
// assemble for the API: analyzer outputs joined with the ledger context
// they were computed from. They live outside domain so the core entity
// package stays free of analytics imports.
package views

import (
	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/shopspring/decimal"
)

// DailyCashView is today's snapshot enriched with the previous recorded
// balance and the delta, when a prior snapshot exists.
type DailyCashView struct {
	Date                string
	CashBalance         decimal.Decimal
	PreviousCashBalance *decimal.Decimal
	Delta               *decimal.Decimal
}

// DailySummaryView is today's profit and loss stamped with the day it
// was computed for.
type DailySummaryView struct {
	Date    string
	Summary analytics.DailySummary
}

// RealityScoreView is the composite score plus the headline figures the
// dashboard shows next to it.
type RealityScoreView struct {
	Score              analytics.RealityScore
	CashOnHand         decimal.Decimal
	CommittedRetainers decimal.Decimal
}
