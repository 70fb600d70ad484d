package l2_service

import (
	"fmt"
	"math"

	"fundplanner/internal/calculator"
	"fundplanner/internal/domain"
)

const weightSumTolerance = 1e-6

// AllocateInverseVolatility weights each selected instrument by
// 1/volatility, scaled so the weights add up to 100. Zero volatility
// members are excluded rather than failing the whole plan
func AllocateInverseVolatility(group domain.SelectedGroup) (*domain.AllocationPlan, error) {
	plan := &domain.AllocationPlan{
		Weights:  []domain.AllocationWeight{},
		Excluded: []domain.Exclusion{},
	}

	inverse := map[string]float64{}
	total := 0.0
	for _, m := range group.Members {
		if m.Volatility == 0 {
			plan.Excluded = append(plan.Excluded, domain.Exclusion{
				Symbol: m.Symbol,
				Reason: fmt.Errorf("%w: %s has zero volatility", domain.ErrDivisionByZero, m.Symbol),
			})
			continue
		}
		inverse[m.Symbol] = 1 / m.Volatility
		total += inverse[m.Symbol]
	}

	for _, m := range group.Members {
		inv, ok := inverse[m.Symbol]
		if !ok {
			continue
		}
		plan.Weights = append(plan.Weights, domain.AllocationWeight{
			Symbol: m.Symbol,
			Weight: (inv / total) * 100,
		})
	}

	// validate new weights add to 100
	if len(plan.Weights) > 0 {
		for _, w := range plan.Weights {
			if math.IsNaN(w.Weight) || w.Weight < 0 {
				return nil, fmt.Errorf("invalid weight %f for %s", w.Weight, w.Symbol)
			}
		}
		if sum := plan.Sum(); !calculator.ApproxEqual(sum, 100, weightSumTolerance) {
			return nil, fmt.Errorf("weights should sum to 100, got %f", sum)
		}
	}

	return plan, nil
}
