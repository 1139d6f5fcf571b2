package analytics_test

import (
	"fmt"
	"testing"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestComputeRealityScore_Composite(t *testing.T) {
	t.Run("fully healthy agency", func(t *testing.T) {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio:       dp("1.8"),
			RunwayMonths:        dp("8.0"),
			TopClientPercentage: d("0.25"),
			OperatingMargin:     d("1500"),
			MonthlyBurn:         d("2000"),
			UtilizationPercent:  72,
		})

		assert.Equal(t, 100, got.Score)
		assert.Equal(t, analytics.StatusHealthy, got.Status)
		assert.Equal(t, analytics.StatusHealthy, got.PrimaryRisk)
	})

	t.Run("concentrated agency on watch", func(t *testing.T) {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio:       dp("2.0"),
			RunwayMonths:        dp("5.0"),
			TopClientPercentage: d("0.75"),
			OperatingMargin:     d("2000"),
			MonthlyBurn:         d("2000"),
			UtilizationPercent:  94,
		})

		assert.Equal(t, 25, got.Breakdown.RetainerSafety.Points)
		assert.Equal(t, 13, got.Breakdown.Runway.Points)
		assert.Equal(t, 0, got.Breakdown.ClientConcentration.Points)
		assert.Equal(t, 20, got.Breakdown.Profitability.Points)
		assert.Equal(t, 11, got.Breakdown.CapacityPressure.Points)
		assert.Equal(t, 69, got.Score)
		assert.Equal(t, analytics.StatusWatch, got.Status)
		assert.Equal(t, analytics.RiskClientConcentration, got.PrimaryRisk)
	})

	t.Run("zero burn earns the degenerate full marks", func(t *testing.T) {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio:       nil, // uncapped
			RunwayMonths:        nil, // infinite
			TopClientPercentage: d("0"),
			OperatingMargin:     d("0"),
			MonthlyBurn:         d("0"),
			UtilizationPercent:  0,
		})

		assert.Equal(t, analytics.MaxRetainerSafety, got.Breakdown.RetainerSafety.Points)
		assert.Equal(t, analytics.MaxRunway, got.Breakdown.Runway.Points)
		assert.Equal(t, 0, got.Breakdown.CapacityPressure.Points)
	})

	t.Run("new agency scores low but well defined", func(t *testing.T) {
		// Burning with no snapshot, no retainers, no hours.
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio:       dp("0"),
			RunwayMonths:        dp("0"),
			TopClientPercentage: d("0"),
			OperatingMargin:     d("-2000"),
			MonthlyBurn:         d("2000"),
			UtilizationPercent:  0,
		})

		assert.Equal(t, 0, got.Breakdown.RetainerSafety.Points)
		assert.Equal(t, 0, got.Breakdown.Runway.Points)
		assert.Equal(t, analytics.MaxClientConcentration, got.Breakdown.ClientConcentration.Points)
		assert.Equal(t, 0, got.Breakdown.Profitability.Points)
		assert.Equal(t, analytics.StatusCritical, got.Status)
	})
}

func TestComputeRealityScore_SubScores(t *testing.T) {
	t.Run("retainer safety caps at the low band under full coverage", func(t *testing.T) {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio: dp("0.9"), RunwayMonths: dp("6"), MonthlyBurn: d("1000"),
			TopClientPercentage: d("0"), OperatingMargin: d("-100"), UtilizationPercent: 70,
		})
		assert.Equal(t, 10, got.Breakdown.RetainerSafety.Points)

		got = analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio: dp("1.2"), RunwayMonths: dp("6"), MonthlyBurn: d("1000"),
			TopClientPercentage: d("0"), OperatingMargin: d("200"), UtilizationPercent: 70,
		})
		assert.Equal(t, 20, got.Breakdown.RetainerSafety.Points)
	})

	t.Run("profitability scales with loss relative to burn", func(t *testing.T) {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio: dp("0.5"), RunwayMonths: dp("6"), MonthlyBurn: d("2000"),
			TopClientPercentage: d("0.2"), OperatingMargin: d("-1000"), UtilizationPercent: 70,
		})
		assert.Equal(t, 10, got.Breakdown.Profitability.Points)

		// Loss as large as the burn floors the score.
		got = analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio: dp("0"), RunwayMonths: dp("6"), MonthlyBurn: d("2000"),
			TopClientPercentage: d("0"), OperatingMargin: d("-2000"), UtilizationPercent: 70,
		})
		assert.Equal(t, 0, got.Breakdown.Profitability.Points)
	})

	t.Run("capacity pressure punishes both extremes", func(t *testing.T) {
		cases := map[int]int{
			0:   0,
			40:  10,
			60:  15,
			85:  15,
			100: 9,
			125: 0,
		}
		for util, want := range cases {
			got := analytics.ComputeRealityScore(analytics.ScoreInput{
				CoverageRatio: dp("1.5"), RunwayMonths: dp("6"), MonthlyBurn: d("1000"),
				TopClientPercentage: d("0"), OperatingMargin: d("500"), UtilizationPercent: util,
			})
			assert.Equalf(t, want, got.Breakdown.CapacityPressure.Points, "utilization %d%%", util)
		}
	})
}

func TestComputeRealityScore_Bounds(t *testing.T) {
	ratios := []*decimal.Decimal{nil, dp("0"), dp("0.4"), dp("0.99"), dp("1"), dp("1.49"), dp("1.5"), dp("3")}
	runways := []*decimal.Decimal{nil, dp("0"), dp("2.9"), dp("3"), dp("4.5"), dp("6"), dp("12")}
	tops := []decimal.Decimal{d("0"), d("0.3"), d("0.31"), d("0.49"), d("0.5"), d("1")}
	margins := []decimal.Decimal{d("-5000"), d("-1"), d("0"), d("2500")}
	utils := []int{0, 30, 59, 60, 85, 86, 100, 119, 120, 250}

	for _, r := range ratios {
		for _, rw := range runways {
			for _, top := range tops {
				for _, m := range margins {
					for _, u := range utils {
						burn := d("2000")
						if m.IsNegative() && rw == nil {
							continue // negative margin implies positive burn
						}
						got := analytics.ComputeRealityScore(analytics.ScoreInput{
							CoverageRatio:       r,
							RunwayMonths:        rw,
							TopClientPercentage: top,
							OperatingMargin:     m,
							MonthlyBurn:         burn,
							UtilizationPercent:  u,
						})

						label := fmt.Sprintf("input r=%v rw=%v top=%s m=%s u=%d", r, rw, top, m, u)
						assert.GreaterOrEqual(t, got.Score, 0, label)
						assert.LessOrEqual(t, got.Score, 100, label)
						for _, sub := range []analytics.SubScore{
							got.Breakdown.RetainerSafety,
							got.Breakdown.Runway,
							got.Breakdown.ClientConcentration,
							got.Breakdown.Profitability,
							got.Breakdown.CapacityPressure,
						} {
							assert.GreaterOrEqual(t, sub.Points, 0, label)
							assert.LessOrEqual(t, sub.Points, sub.Max, label)
						}

						// Pure function: recomputing yields the identical result.
						again := analytics.ComputeRealityScore(analytics.ScoreInput{
							CoverageRatio:       r,
							RunwayMonths:        rw,
							TopClientPercentage: top,
							OperatingMargin:     m,
							MonthlyBurn:         burn,
							UtilizationPercent:  u,
						})
						assert.Equal(t, got, again, label)
					}
				}
			}
		}
	}
}

func TestStatusThresholds(t *testing.T) {
	// Status is a pure threshold function of the score, so it is
	// monotonic non-decreasing by construction. Sweep a dimension that
	// moves the composite smoothly and check every landing against the
	// stated 80/60/40 boundaries.
	rank := map[string]int{
		analytics.StatusCritical: 0,
		analytics.StatusAtRisk:   1,
		analytics.StatusWatch:    2,
		analytics.StatusHealthy:  3,
	}

	expected := func(score int) string {
		switch {
		case score >= 80:
			return analytics.StatusHealthy
		case score >= 60:
			return analytics.StatusWatch
		case score >= 40:
			return analytics.StatusAtRisk
		default:
			return analytics.StatusCritical
		}
	}

	prevScore, prevRank := -1, -1
	for util := 0; util <= 250; util++ {
		got := analytics.ComputeRealityScore(analytics.ScoreInput{
			CoverageRatio:       dp("1.5"),
			RunwayMonths:        dp("6"),
			TopClientPercentage: d("0.4"),
			OperatingMargin:     d("0"),
			MonthlyBurn:         d("1000"),
			UtilizationPercent:  util,
		})

		assert.Equal(t, expected(got.Score), got.Status, "score %d", got.Score)
		if got.Score >= prevScore {
			assert.GreaterOrEqual(t, rank[got.Status], prevRank, "score %d after %d", got.Score, prevScore)
		}
		prevScore, prevRank = got.Score, rank[got.Status]
	}
}
