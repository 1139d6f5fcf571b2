package analytics

import (
	"github.com/agencypulse/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotal is a summed cost category. Callers supply totals in
// first-seen occurrence order so driver ties resolve deterministically.
type CategoryTotal struct {
	Category domain.CostCategory
	Amount   decimal.Decimal
}

// CostDriver names the category carrying the largest share of spend.
type CostDriver struct {
	Category   domain.CostCategory
	Amount     decimal.Decimal
	Percentage decimal.Decimal // share of total, 0..100, one decimal
}

// CostBreakdown maps categories to summed amounts and identifies the
// dominant cost driver.
type CostBreakdown struct {
	TotalCosts    decimal.Decimal
	ByCategory    map[domain.CostCategory]decimal.Decimal
	PrimaryDriver CostDriver
}

// ComputeCostBreakdown aggregates period costs by category. Ties on the
// largest amount go to the category seen first in the period, which is
// why the input slice order matters. With no costs at all the driver
// defaults to the "other" bucket at zero.
func ComputeCostBreakdown(totals []CategoryTotal) CostBreakdown {
	out := CostBreakdown{
		ByCategory:    make(map[domain.CostCategory]decimal.Decimal, len(totals)),
		PrimaryDriver: CostDriver{Category: domain.CategoryOther, Amount: decimal.Zero, Percentage: decimal.Zero},
	}

	max := decimal.NewFromInt(-1)
	for _, t := range totals {
		out.ByCategory[t.Category] = t.Amount
		out.TotalCosts = out.TotalCosts.Add(t.Amount)
		if t.Amount.GreaterThan(max) {
			max = t.Amount
			out.PrimaryDriver.Category = t.Category
			out.PrimaryDriver.Amount = t.Amount
		}
	}

	if out.TotalCosts.IsPositive() {
		out.PrimaryDriver.Percentage = out.PrimaryDriver.Amount.
			Div(out.TotalCosts).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	return out
}
