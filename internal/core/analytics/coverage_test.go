package analytics_test

import (
	"testing"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRetainerCoverage(t *testing.T) {
	t.Run("two clients against a known burn", func(t *testing.T) {
		// 3000 + 1000 retainers, 2000/month fixed costs.
		got := analytics.ComputeRetainerCoverage([]analytics.ClientRetainer{
			{ClientID: "c1", MonthlyAmount: d("3000")},
			{ClientID: "c2", MonthlyAmount: d("1000")},
		}, d("2000"))

		require.NotNil(t, got.CoverageRatio)
		assert.True(t, got.CoverageRatio.Equal(d("2.0")), "ratio = %s", got.CoverageRatio)
		assert.True(t, got.TopClientPercentage.Equal(d("0.75")), "top = %s", got.TopClientPercentage)
		assert.Equal(t, "c1", got.TopClientID)
	})

	t.Run("no retainers with positive burn", func(t *testing.T) {
		got := analytics.ComputeRetainerCoverage(nil, d("2000"))

		require.NotNil(t, got.CoverageRatio, "positive burn must not trigger the uncapped sentinel")
		assert.True(t, got.CoverageRatio.IsZero())
		assert.True(t, got.TopClientPercentage.IsZero())
	})

	t.Run("zero burn reports uncapped coverage", func(t *testing.T) {
		got := analytics.ComputeRetainerCoverage([]analytics.ClientRetainer{
			{ClientID: "c1", MonthlyAmount: d("1000")},
		}, decimal.Zero)

		assert.Nil(t, got.CoverageRatio)
		assert.True(t, got.TopClientPercentage.Equal(d("1")))
	})

	t.Run("equal largest retainers yield the same percentage either way", func(t *testing.T) {
		got := analytics.ComputeRetainerCoverage([]analytics.ClientRetainer{
			{ClientID: "c1", MonthlyAmount: d("2500")},
			{ClientID: "c2", MonthlyAmount: d("2500")},
		}, d("1000"))

		assert.True(t, got.TopClientPercentage.Equal(d("0.5")))
		assert.Contains(t, []string{"c1", "c2"}, got.TopClientID)
	})

	t.Run("percentage never exceeds one", func(t *testing.T) {
		got := analytics.ComputeRetainerCoverage([]analytics.ClientRetainer{
			{ClientID: "solo", MonthlyAmount: d("8000")},
		}, d("100"))

		assert.True(t, got.TopClientPercentage.LessThanOrEqual(d("1")))
		assert.False(t, got.TopClientPercentage.IsNegative())
	})
}
