package analytics

import "github.com/shopspring/decimal"

// ClientRetainer pairs a client with its active monthly retainer amount.
type ClientRetainer struct {
	ClientID      string
	MonthlyAmount decimal.Decimal
}

// RetainerCoverage describes how well the active retainer base covers
// fixed costs and how concentrated it is in a single client.
type RetainerCoverage struct {
	TotalMonthlyRetainer decimal.Decimal
	CoverageRatio        *decimal.Decimal // nil iff monthlyBurn is zero (uncapped coverage)
	TopClientID          string
	TopClientPercentage  decimal.Decimal // 0..1
}

// ComputeRetainerCoverage derives the coverage ratio (rounded to two
// decimals) and the top-client concentration from active retainers. A
// zero burn reports coverage as the uncapped sentinel (nil) rather than a
// division error; a zero retainer total reports zero concentration. When
// two clients tie for the largest retainer either may be reported as the
// top client, the percentage is identical both ways.
func ComputeRetainerCoverage(retainers []ClientRetainer, monthlyBurn decimal.Decimal) RetainerCoverage {
	var out RetainerCoverage

	top := decimal.Zero
	for _, r := range retainers {
		out.TotalMonthlyRetainer = out.TotalMonthlyRetainer.Add(r.MonthlyAmount)
		if r.MonthlyAmount.GreaterThan(top) {
			top = r.MonthlyAmount
			out.TopClientID = r.ClientID
		}
	}

	if monthlyBurn.IsPositive() {
		ratio := out.TotalMonthlyRetainer.Div(monthlyBurn).Round(2)
		out.CoverageRatio = &ratio
	}

	if out.TotalMonthlyRetainer.IsPositive() {
		out.TopClientPercentage = top.Div(out.TotalMonthlyRetainer).Round(4)
	} else {
		out.TopClientPercentage = decimal.Zero
	}

	return out
}
