package l3_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fundplanner/internal/domain"
	"fundplanner/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newDataset(symbols []string, columns map[string][]float64) domain.PriceDataset {
	dataset := domain.PriceDataset{
		Dates:   []time.Time{},
		Symbols: symbols,
		Prices:  map[string][]*float64{},
	}
	for symbol, prices := range columns {
		for i := range prices {
			p := prices[i]
			dataset.Prices[symbol] = append(dataset.Prices[symbol], &p)
		}
		if len(dataset.Dates) == 0 {
			for i := range prices {
				dataset.Dates = append(dataset.Dates, util.NewDate(2024, 1, 1).AddDate(0, i, 0))
			}
		}
	}
	return dataset
}

func defaultParams(t *testing.T) domain.PlanParams {
	params, err := domain.NewPlanParams(5000, 12, "1,5")
	require.NoError(t, err)
	return *params
}

func Test_plannerServiceHandler_Plan(t *testing.T) {
	t.Run("three instruments with a volatility tie", func(t *testing.T) {
		dataset := newDataset([]string{"A", "B", "C"}, map[string][]float64{
			"A": {100, 110},
			"B": {100, 90},
			"C": {100, 105},
		})

		result, err := NewPlannerService().Plan(context.Background(), dataset, defaultParams(t))
		require.NoError(t, err)

		require.InDelta(t, 10, result.Statistics.Stats["A"].ROI, 1e-9)
		require.InDelta(t, -10, result.Statistics.Stats["B"].ROI, 1e-9)
		require.InDelta(t, 5, result.Statistics.Stats["C"].ROI, 1e-9)
		require.InDelta(t, 5, result.Selection.RoiThreshold, 1e-9)
		require.InDelta(t, 7.0710678118654755, result.Selection.VolatilityThreshold, 1e-12)

		// A beats the roi median but its volatility equals the median
		require.True(t, result.Selection.IsEmpty())
		require.True(t, result.Allocation.IsEmpty())
		require.Nil(t, result.Projection)
		require.NotNil(t, result.ProjectionError)
		require.Contains(t, *result.ProjectionError, domain.ErrNoSelection.Error())
	})

	t.Run("six instruments", func(t *testing.T) {
		dataset := newDataset([]string{"A", "B", "C", "D", "E", "F"}, map[string][]float64{
			"A": {100, 101, 102},
			"B": {100, 104, 108},
			"C": {100, 102, 110},
			"D": {100, 90, 104},
			"E": {100, 70, 105},
			"F": {100, 103, 106},
		})

		profile := domain.NewPeformanceProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)
		result, err := NewPlannerService().Plan(ctx, dataset, defaultParams(t))
		require.NoError(t, err)

		require.InDelta(t, 5.5, result.Selection.RoiThreshold, 1e-9)
		require.InDelta(t, 4.645751311064591, result.Selection.VolatilityThreshold, 1e-9)
		require.Equal(t, []string{"B", "F"}, result.Selection.Symbols())

		require.Len(t, result.Allocation.Weights, 2)
		require.InDelta(t, 42.857142857142854, result.Allocation.Weights[0].Weight, 1e-9)
		require.InDelta(t, 57.142857142857146, result.Allocation.Weights[1].Weight, 1e-9)
		require.InDelta(t, 100, result.Allocation.Sum(), 1e-6)

		require.NotNil(t, result.Projection)
		require.Nil(t, result.ProjectionError)
		require.InDelta(t, 0.07, result.Projection.AnnualRate, 1e-9)
		require.InDelta(t, 62324.37685248337, result.Projection.Points[0].FutureValue, 1e-6)
		require.InDelta(t, 360052.63453863293, result.Projection.Points[1].FutureValue, 1e-6)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]string{"statistics", "selection", "allocation", "projection"},
				profile.EventNames(),
			),
		)
	})

	t.Run("runs are independent", func(t *testing.T) {
		dataset := newDataset([]string{"A", "B"}, map[string][]float64{
			"A": {100, 101, 102},
			"B": {100, 120, 90},
		})
		planner := NewPlannerService()

		first, err := planner.Plan(context.Background(), dataset, defaultParams(t))
		require.NoError(t, err)
		second, err := planner.Plan(context.Background(), dataset, defaultParams(t))
		require.NoError(t, err)

		require.NotEqual(t, first.RunID, second.RunID)
		require.Equal(t, first.Statistics, second.Statistics)
	})

	t.Run("no horizons", func(t *testing.T) {
		dataset := newDataset([]string{"A"}, map[string][]float64{"A": {1, 2}})
		_, err := NewPlannerService().Plan(context.Background(), dataset, domain.PlanParams{MonthlyInvestment: 1})
		require.True(t, errors.Is(err, domain.ErrInputParse))

		stageErr := domain.StageError{}
		require.True(t, errors.As(err, &stageErr))
		require.Equal(t, domain.Stage_Params, stageErr.Stage)
	})
}
