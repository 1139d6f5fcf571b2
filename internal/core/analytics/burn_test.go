package analytics_test

import (
	"testing"

	"github.com/agencypulse/backend/internal/core/analytics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBurnRunway(t *testing.T) {
	t.Run("starting cash against fixed costs", func(t *testing.T) {
		// 10000 cash, 2000/month fixed, no retainers.
		got := analytics.ComputeBurnRunway(d("2000"), d("10000"), decimal.Zero)

		require.NotNil(t, got.RunwayMonths)
		assert.True(t, got.RunwayMonths.Equal(d("5.0")), "runway = %s", got.RunwayMonths)
		assert.True(t, got.MonthlyBurn.Equal(d("2000")))
		assert.True(t, got.OperatingMargin.Equal(d("-2000")))
	})

	t.Run("runway rounds to one decimal", func(t *testing.T) {
		got := analytics.ComputeBurnRunway(d("3000"), d("10000"), decimal.Zero)
		require.NotNil(t, got.RunwayMonths)
		assert.True(t, got.RunwayMonths.Equal(d("3.3")), "runway = %s", got.RunwayMonths)
	})

	t.Run("zero burn means infinite runway", func(t *testing.T) {
		got := analytics.ComputeBurnRunway(decimal.Zero, d("10000"), d("4000"))
		assert.Nil(t, got.RunwayMonths)
		assert.True(t, got.OperatingMargin.Equal(d("4000")))
	})

	t.Run("no cash recorded defaults to zero runway when burning", func(t *testing.T) {
		got := analytics.ComputeBurnRunway(d("2000"), decimal.Zero, decimal.Zero)
		require.NotNil(t, got.RunwayMonths)
		assert.True(t, got.RunwayMonths.IsZero())
	})

	t.Run("positive margin when retainers exceed burn", func(t *testing.T) {
		got := analytics.ComputeBurnRunway(d("2000"), d("500"), d("3500"))
		assert.True(t, got.OperatingMargin.Equal(d("1500")))
		assert.True(t, got.TotalRetainers.Equal(d("3500")))
	})
}
