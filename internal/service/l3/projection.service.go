package l3_service

import (
	"fmt"
	"math"

	"fundplanner/internal/calculator"
	"fundplanner/internal/domain"
)

// FutureValue of a contribution P paid at the start of each of n*t
// periods, compounded at r/n per period. A zero rate falls back to the
// plain sum of contributions
func FutureValue(P, r float64, n, t int) float64 {
	periods := float64(n * t)
	if r == 0 {
		return P * periods
	}
	i := r / float64(n)
	return P * ((math.Pow(1+i, periods) - 1) / i) * (1 + i)
}

// ProjectFutureValue projects the monthly contribution at the selected
// group's mean ROI for every horizon, in the order given
func ProjectFutureValue(group domain.SelectedGroup, params domain.PlanParams) (*domain.ProjectionResult, error) {
	if group.IsEmpty() {
		return nil, domain.ErrNoSelection
	}

	rois := []float64{}
	for _, m := range group.Members {
		rois = append(rois, m.ROI)
	}
	meanRoi, err := calculator.Mean(rois)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate average roi: %w", err)
	}
	rate := meanRoi / 100

	result := &domain.ProjectionResult{
		MonthlyInvestment:    params.MonthlyInvestment,
		AnnualRate:           rate,
		CompoundingFrequency: domain.MonthlyCompounding,
		Points:               []domain.ProjectionPoint{},
	}
	for _, years := range params.Horizons {
		result.Points = append(result.Points, domain.ProjectionPoint{
			Years:       years,
			FutureValue: FutureValue(params.MonthlyInvestment, rate, domain.MonthlyCompounding, years),
		})
	}

	return result, nil
}
