package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalculateScenarioMetrics(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("flat series has zero return and zero stdev", func(t *testing.T) {
		metrics, err := CalculateScenarioMetrics([]ValueSnapshot{
			{Date: day(1), TotalValue: 50000},
			{Date: day(2), TotalValue: 50000},
			{Date: day(3), TotalValue: 50000},
		})
		require.NoError(t, err)
		require.Zero(t, metrics.TotalReturn)
		require.Zero(t, metrics.AnnualizedStdev)
		require.Zero(t, metrics.SharpeRatio)
		require.Zero(t, metrics.MaxDrawdown)
	})

	t.Run("drawdown is measured from the peak", func(t *testing.T) {
		metrics, err := CalculateScenarioMetrics([]ValueSnapshot{
			{Date: day(1), TotalValue: 50000},
			{Date: day(2), TotalValue: 60000},
			{Date: day(3), TotalValue: 45000},
			{Date: day(4), TotalValue: 55000},
		})
		require.NoError(t, err)
		require.InDelta(t, 0.1, metrics.TotalReturn, 1e-9)
		require.InDelta(t, -0.25, metrics.MaxDrawdown, 1e-9)
	})

	t.Run("out of order snapshots are handled", func(t *testing.T) {
		metrics, err := CalculateScenarioMetrics([]ValueSnapshot{
			{Date: day(3), TotalValue: 52000},
			{Date: day(1), TotalValue: 50000},
			{Date: day(2), TotalValue: 51000},
		})
		require.NoError(t, err)
		require.InDelta(t, 0.04, metrics.TotalReturn, 1e-9)
	})

	t.Run("too few snapshots", func(t *testing.T) {
		_, err := CalculateScenarioMetrics([]ValueSnapshot{{Date: day(1), TotalValue: 50000}})
		require.Error(t, err)
	})
}

func TestWinRate(t *testing.T) {
	rate, err := WinRate(6, 10)
	require.NoError(t, err)
	require.InDelta(t, 0.6, rate, 1e-9)

	_, err = WinRate(0, 0)
	require.Error(t, err)

	_, err = WinRate(11, 10)
	require.Error(t, err)
}
