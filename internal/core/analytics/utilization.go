package analytics

import "github.com/shopspring/decimal"

// Utilization reports how much of the billable capacity the logged hours
// consumed over the billing window.
type Utilization struct {
	UsedHours          decimal.Decimal
	CapacityHours      decimal.Decimal
	UtilizationPercent int
}

// ComputeUtilization derives the utilization percentage, rounded to the
// nearest integer. The result is deliberately not capped: values above
// 100 indicate overcommitment and must stay representable.
func ComputeUtilization(usedHours, capacityHours decimal.Decimal) Utilization {
	out := Utilization{
		UsedHours:     usedHours,
		CapacityHours: capacityHours,
	}

	if capacityHours.IsPositive() {
		pct := usedHours.Div(capacityHours).Mul(decimal.NewFromInt(100))
		out.UtilizationPercent = int(pct.Round(0).IntPart())
	}

	return out
}
