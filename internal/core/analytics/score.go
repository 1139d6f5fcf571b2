package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// Sub-score ceilings. The five maxima sum to 100.
const (
	MaxRetainerSafety      = 25
	MaxRunway              = 20
	MaxClientConcentration = 20
	MaxProfitability       = 20
	MaxCapacityPressure    = 15
)

// Status tiers for the composite score.
const (
	StatusHealthy  = "Healthy"
	StatusWatch    = "Watch"
	StatusAtRisk   = "At Risk"
	StatusCritical = "Critical"
)

// Human labels for the primary-risk diagnosis, one per sub-score.
const (
	RiskHighFixedCosts      = "High Fixed Costs"
	RiskThinRunway          = "Thin Runway"
	RiskClientConcentration = "Client Concentration"
	RiskStructuralLoss      = "Structural Loss"
	RiskCapacityMismatch    = "Capacity Mismatch"
)

// SubScore is one scored dimension with its ceiling, for display.
type SubScore struct {
	Points int
	Max    int
}

// ScoreBreakdown exposes every sub-score alongside its maximum.
type ScoreBreakdown struct {
	RetainerSafety      SubScore
	Runway              SubScore
	ClientConcentration SubScore
	Profitability       SubScore
	CapacityPressure    SubScore
}

// RealityScore is the composite health signal: a 0-100 score, a status
// tier, and the single dimension dragging the score down the most.
type RealityScore struct {
	Score       int
	Status      string
	PrimaryRisk string
	Breakdown   ScoreBreakdown
}

// ScoreInput carries the already-computed analyzer outputs the aggregator
// combines. The aggregator never re-reads the ledger.
type ScoreInput struct {
	CoverageRatio       *decimal.Decimal // nil means uncapped (zero burn)
	RunwayMonths        *decimal.Decimal // nil means infinite (zero burn)
	TopClientPercentage decimal.Decimal  // 0..1
	OperatingMargin     decimal.Decimal
	MonthlyBurn         decimal.Decimal
	UtilizationPercent  int
}

// ComputeRealityScore combines the five weighted sub-scores into the
// composite score. Each sub-score interpolates linearly between its
// breakpoints and is clamped to [0, max] before summing, so the total is
// always within 0-100.
func ComputeRealityScore(in ScoreInput) RealityScore {
	b := ScoreBreakdown{
		RetainerSafety:      SubScore{scoreRetainerSafety(in.CoverageRatio), MaxRetainerSafety},
		Runway:              SubScore{scoreRunway(in.RunwayMonths), MaxRunway},
		ClientConcentration: SubScore{scoreConcentration(in.TopClientPercentage), MaxClientConcentration},
		Profitability:       SubScore{scoreProfitability(in.OperatingMargin, in.MonthlyBurn), MaxProfitability},
		CapacityPressure:    SubScore{scoreCapacity(in.UtilizationPercent), MaxCapacityPressure},
	}

	total := b.RetainerSafety.Points +
		b.Runway.Points +
		b.ClientConcentration.Points +
		b.Profitability.Points +
		b.CapacityPressure.Points

	out := RealityScore{
		Score:     total,
		Status:    statusFor(total),
		Breakdown: b,
	}
	out.PrimaryRisk = primaryRisk(out)
	return out
}

func statusFor(score int) string {
	switch {
	case score >= 80:
		return StatusHealthy
	case score >= 60:
		return StatusWatch
	case score >= 40:
		return StatusAtRisk
	default:
		return StatusCritical
	}
}

// primaryRisk picks the sub-score furthest below its ceiling. Ties
// resolve in declaration order so retries diagnose identically. A
// healthy agency reports "Healthy" regardless of deficits.
func primaryRisk(s RealityScore) string {
	if s.Status == StatusHealthy {
		return StatusHealthy
	}

	candidates := []struct {
		sub   SubScore
		label string
	}{
		{s.Breakdown.RetainerSafety, RiskHighFixedCosts},
		{s.Breakdown.Runway, RiskThinRunway},
		{s.Breakdown.ClientConcentration, RiskClientConcentration},
		{s.Breakdown.Profitability, RiskStructuralLoss},
		{s.Breakdown.CapacityPressure, RiskCapacityMismatch},
	}

	worst := candidates[0]
	for _, c := range candidates[1:] {
		if c.sub.Max-c.sub.Points > worst.sub.Max-worst.sub.Points {
			worst = c
		}
	}
	return worst.label
}

// scoreRetainerSafety scales linearly from 0 at ratio 0 to full marks at
// ratio 1.5. While the burn is not fully covered (ratio < 1) the score is
// capped at a low band of 10. An uncapped ratio (zero burn) earns full
// marks: there is nothing to cover.
func scoreRetainerSafety(ratio *decimal.Decimal) int {
	if ratio == nil {
		return MaxRetainerSafety
	}
	r, _ := ratio.Float64()
	raw := r / 1.5 * MaxRetainerSafety
	if r < 1.0 {
		raw = math.Min(raw, 10)
	}
	return clampRound(raw, MaxRetainerSafety)
}

// scoreRunway gives full marks at six months or more, nothing under
// three, linear in between. Infinite runway (zero burn) is full marks.
func scoreRunway(months *decimal.Decimal) int {
	if months == nil {
		return MaxRunway
	}
	m, _ := months.Float64()
	switch {
	case m >= 6:
		return MaxRunway
	case m < 3:
		return 0
	default:
		return clampRound((m-3)/3*MaxRunway, MaxRunway)
	}
}

// scoreConcentration is inverted: the bigger the top client's share, the
// lower the score. Full marks up to 30%, nothing from 50% on.
func scoreConcentration(topPct decimal.Decimal) int {
	p, _ := topPct.Float64()
	switch {
	case p <= 0.3:
		return MaxClientConcentration
	case p >= 0.5:
		return 0
	default:
		return clampRound((0.5-p)/0.2*MaxClientConcentration, MaxClientConcentration)
	}
}

// scoreProfitability gives full marks for a non-negative operating
// margin and scales the score down proportionally to the size of the
// loss relative to the monthly burn.
func scoreProfitability(margin, burn decimal.Decimal) int {
	if margin.Sign() >= 0 {
		return MaxProfitability
	}
	// A negative margin implies a positive burn: margin = retainers - burn
	// and retainers are never negative.
	loss, _ := margin.Neg().Div(burn).Float64()
	return clampRound((1-loss)*MaxProfitability, MaxProfitability)
}

// scoreCapacity rewards the healthy 60-85% band. Below it the score
// scales down toward zero at 0% (under-selling); above it the score
// decays to zero at 120% (burnout risk).
func scoreCapacity(utilizationPct int) int {
	u := float64(utilizationPct)
	switch {
	case u >= 60 && u <= 85:
		return MaxCapacityPressure
	case u < 60:
		return clampRound(u/60*MaxCapacityPressure, MaxCapacityPressure)
	default:
		return clampRound((1-(u-85)/35)*MaxCapacityPressure, MaxCapacityPressure)
	}
}

func clampRound(v float64, max int) int {
	if v <= 0 {
		return 0
	}
	if v >= float64(max) {
		return max
	}
	return int(math.Round(v))
}
