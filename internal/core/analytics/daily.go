package analytics

import "github.com/shopspring/decimal"

// DailySummary is today's profit and loss at a glance.
type DailySummary struct {
	Revenue decimal.Decimal
	Costs   decimal.Decimal
	Net     decimal.Decimal
}

// ComputeDailySummary nets today's revenue against today's costs (fixed
// and variable alike).
func ComputeDailySummary(revenue, costs decimal.Decimal) DailySummary {
	return DailySummary{
		Revenue: revenue,
		Costs:   costs,
		Net:     revenue.Sub(costs),
	}
}
