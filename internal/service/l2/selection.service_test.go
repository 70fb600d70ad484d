package l2_service

import (
	"testing"

	"fundplanner/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type statsInput struct {
	symbol     string
	roi        float64
	volatility float64
}

func newStatisticsResult(in ...statsInput) domain.StatisticsResult {
	result := domain.StatisticsResult{
		Symbols: []string{},
		Stats:   map[string]domain.InstrumentStats{},
	}
	for _, s := range in {
		result.Symbols = append(result.Symbols, s.symbol)
		result.Stats[s.symbol] = domain.InstrumentStats{
			Symbol:     s.symbol,
			ROI:        s.roi,
			Volatility: s.volatility,
		}
	}
	return result
}

func TestSelectInstruments(t *testing.T) {
	t.Run("even sized median", func(t *testing.T) {
		group := SelectInstruments(newStatisticsResult(
			statsInput{"A", 1, 1},
			statsInput{"B", 2, 2},
			statsInput{"C", 3, 3},
			statsInput{"D", 4, 4},
		))
		require.Equal(t, 2.5, group.VolatilityThreshold)
		require.Equal(t, 2.5, group.RoiThreshold)
	})

	t.Run("odd sized median", func(t *testing.T) {
		group := SelectInstruments(newStatisticsResult(
			statsInput{"A", 3, 1},
			statsInput{"B", 1, 2},
			statsInput{"C", 2, 3},
		))
		require.Equal(t, 2.0, group.VolatilityThreshold)
		require.Equal(t, 2.0, group.RoiThreshold)
	})

	t.Run("high return low risk only", func(t *testing.T) {
		group := SelectInstruments(newStatisticsResult(
			statsInput{"HIGH_LOW", 20, 1},
			statsInput{"HIGH_HIGH", 30, 9},
			statsInput{"LOW_LOW", 1, 2},
			statsInput{"LOW_HIGH", 2, 8},
		))
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.SelectedInstrument{{Symbol: "HIGH_LOW", ROI: 20, Volatility: 1}},
				group.Members,
			),
		)
	})

	t.Run("roi equal to threshold is excluded", func(t *testing.T) {
		group := SelectInstruments(newStatisticsResult(
			statsInput{"A", 1, 5},
			statsInput{"MID", 5, 1},
			statsInput{"C", 9, 9},
		))
		require.Equal(t, 5.0, group.RoiThreshold)
		require.True(t, group.IsEmpty())
	})

	t.Run("volatility equal to threshold is excluded", func(t *testing.T) {
		group := SelectInstruments(newStatisticsResult(
			statsInput{"A", 10, 2},
			statsInput{"B", 1, 1},
			statsInput{"C", 2, 3},
		))
		require.Equal(t, 2.0, group.VolatilityThreshold)
		require.True(t, group.IsEmpty())
	})

	t.Run("ignores excluded instruments", func(t *testing.T) {
		result := newStatisticsResult(
			statsInput{"A", 10, 1},
			statsInput{"B", 1, 5},
		)
		result.Symbols = append(result.Symbols, "NO_STATS")
		group := SelectInstruments(result)

		require.Equal(t, 5.5, group.RoiThreshold)
		require.Equal(t, 3.0, group.VolatilityThreshold)
		require.Equal(t, []string{"A"}, group.Symbols())
	})

	t.Run("no instruments", func(t *testing.T) {
		group := SelectInstruments(domain.StatisticsResult{})
		require.True(t, group.IsEmpty())
		require.NotNil(t, group.Members)
	})
}
