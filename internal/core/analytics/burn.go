// Package analytics holds the pure computations that turn stored ledger
// facts into derived financial metrics. Every function in this package is
// a deterministic function of its inputs: no clocks, no I/O, no state.
// Services read the ledger slice they need and hand the values in.
package analytics

import "github.com/shopspring/decimal"

// BurnRunway is the survival view of the agency: how fast cash leaves,
// how long it lasts, and whether retainers structurally cover the burn.
type BurnRunway struct {
	MonthlyBurn     decimal.Decimal
	CashOnHand      decimal.Decimal
	RunwayMonths    *decimal.Decimal // nil iff MonthlyBurn is zero (infinite runway)
	OperatingMargin decimal.Decimal
	TotalRetainers  decimal.Decimal
}

// ComputeBurnRunway derives burn and runway figures.
//
// fixedCosts is the sum of fixed-cost entries in the trailing 30 days,
// already normalized to a 30-day month. cashOnHand is the latest snapshot
// balance, the agency's starting cash if no snapshot exists, or zero.
// Runway is rounded to one decimal place; a zero burn yields a nil runway
// rather than a numeric overflow.
func ComputeBurnRunway(fixedCosts, cashOnHand, activeRetainers decimal.Decimal) BurnRunway {
	out := BurnRunway{
		MonthlyBurn:     fixedCosts,
		CashOnHand:      cashOnHand,
		OperatingMargin: activeRetainers.Sub(fixedCosts),
		TotalRetainers:  activeRetainers,
	}

	if fixedCosts.IsPositive() {
		runway := cashOnHand.Div(fixedCosts).Round(1)
		out.RunwayMonths = &runway
	}

	return out
}
