package l1_service

import (
	"errors"
	"math"
	"testing"
	"time"

	"fundplanner/internal/domain"
	"fundplanner/internal/util"

	"github.com/stretchr/testify/require"
)

func newDataset(columns map[string][]*float64, symbols ...string) domain.PriceDataset {
	n := 0
	for _, prices := range columns {
		n = len(prices)
	}
	dates := []time.Time{}
	for i := 0; i < n; i++ {
		dates = append(dates, util.NewDate(2024, 1, 1).AddDate(0, 0, i))
	}
	return domain.PriceDataset{
		Dates:   dates,
		Symbols: symbols,
		Prices:  columns,
	}
}

func TestComputeStatistics(t *testing.T) {
	t.Run("two point roi", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"A": {f(100), f(150)},
		}, "A"))

		require.Empty(t, result.Excluded)
		s := result.Stats["A"]
		require.Equal(t, 50.0, s.ROI)
		require.Equal(t, 50.0, s.AverageGrowth)
		require.InDelta(t, 50/math.Sqrt(2), s.Volatility, 1e-12)
		require.Nil(t, s.PeriodGrowth[0])
		require.Equal(t, 50.0, *s.PeriodGrowth[1])
	})

	t.Run("growth and volatility", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"B": {f(100), f(104), f(108)},
		}, "B"))

		s := result.Stats["B"]
		require.InDelta(t, 8, s.ROI, 1e-9)
		require.InDelta(t, 4, s.Volatility, 1e-9)
		require.InDelta(t, (4.0+400.0/104.0)/2, s.AverageGrowth, 1e-9)
		require.Equal(t, 3, s.NumObservations)
	})

	t.Run("leading gap uses observed window", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"A": {nil, f(100), nil, f(110)},
		}, "A"))

		s := result.Stats["A"]
		require.InDelta(t, 10, s.ROI, 1e-9)
		require.Equal(t, 3, s.NumObservations)
		require.Nil(t, s.PeriodGrowth[0])
		require.Nil(t, s.PeriodGrowth[1])
		require.Equal(t, 0.0, *s.PeriodGrowth[2])
	})

	t.Run("zero first price is excluded", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"Z": {f(0), f(10)},
			"A": {f(10), f(11)},
		}, "Z", "A"))

		require.NotContains(t, result.Stats, "Z")
		require.Contains(t, result.Stats, "A")
		require.Len(t, result.Excluded, 1)
		require.Equal(t, "Z", result.Excluded[0].Symbol)
		require.True(t, errors.Is(result.Excluded[0].Reason, domain.ErrUndefinedRatio))
	})

	t.Run("zero interior price skips undefined growth", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"A": {f(10), f(0), f(5)},
		}, "A"))

		s := result.Stats["A"]
		require.Equal(t, -100.0, *s.PeriodGrowth[1])
		require.Nil(t, s.PeriodGrowth[2])
		require.Equal(t, -100.0, s.AverageGrowth)
		require.InDelta(t, -50, s.ROI, 1e-9)
		require.False(t, math.IsNaN(s.Volatility))
	})

	t.Run("too few observations", func(t *testing.T) {
		result := ComputeStatistics(newDataset(map[string][]*float64{
			"A": {nil, nil, f(3)},
			"B": {nil, nil, nil},
		}, "A", "B"))

		require.Empty(t, result.Stats)
		require.Len(t, result.Excluded, 2)
	})

	t.Run("order of symbols does not change stats", func(t *testing.T) {
		columns := map[string][]*float64{
			"A": {f(100), f(110)},
			"B": {f(100), f(90)},
			"C": {f(100), f(105)},
		}
		first := ComputeStatistics(newDataset(columns, "A", "B", "C"))
		second := ComputeStatistics(newDataset(columns, "C", "A", "B"))

		require.Equal(t, first.Stats, second.Stats)
		require.Equal(t, []string{"C", "A", "B"}, second.Symbols)
	})
}
