package l1_service

import (
	"fmt"

	"fundplanner/internal/calculator"
	"fundplanner/internal/domain"
)

// ComputeStatistics derives volatility, growth and ROI for every
// instrument. Instruments whose ratios are undefined are listed in
// Excluded instead of carrying NaN downstream
func ComputeStatistics(dataset domain.PriceDataset) domain.StatisticsResult {
	filled := ForwardFill(dataset)

	result := domain.StatisticsResult{
		Symbols:  append([]string{}, filled.Symbols...),
		Stats:    map[string]domain.InstrumentStats{},
		Excluded: []domain.Exclusion{},
	}
	for _, symbol := range filled.Symbols {
		stats, err := instrumentStats(symbol, filled.Prices[symbol])
		if err != nil {
			result.Excluded = append(result.Excluded, domain.Exclusion{
				Symbol: symbol,
				Reason: err,
			})
			continue
		}
		result.Stats[symbol] = *stats
	}

	return result
}

func instrumentStats(symbol string, prices []*float64) (*domain.InstrumentStats, error) {
	start := 0
	for start < len(prices) && prices[start] == nil {
		start++
	}
	observed := []float64{}
	for _, p := range prices[start:] {
		observed = append(observed, *p)
	}
	if len(observed) < 2 {
		return nil, fmt.Errorf("%w: %s has %d observed price(s)", domain.ErrUndefinedRatio, symbol, len(observed))
	}

	first := observed[0]
	last := observed[len(observed)-1]
	roi, ok := calculator.PercentChange(first, last)
	if !ok {
		return nil, fmt.Errorf("%w: %s has a zero first price", domain.ErrUndefinedRatio, symbol)
	}

	volatility, err := calculator.SampleStdev(observed)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate volatility for %s: %w", symbol, err)
	}

	periodGrowth := make([]*float64, len(prices))
	defined := []float64{}
	for i := start + 1; i < len(prices); i++ {
		growth, ok := calculator.PercentChange(*prices[i-1], *prices[i])
		if !ok {
			continue
		}
		periodGrowth[i] = &growth
		defined = append(defined, growth)
	}
	averageGrowth, err := calculator.Mean(defined)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no defined period growth", domain.ErrUndefinedRatio, symbol)
	}

	return &domain.InstrumentStats{
		Symbol:          symbol,
		Volatility:      volatility,
		AverageGrowth:   averageGrowth,
		ROI:             roi,
		PeriodGrowth:    periodGrowth,
		NumObservations: len(observed),
	}, nil
}
