package l2_service

import (
	"fundplanner/internal/calculator"
	"fundplanner/internal/domain"
)

// SelectInstruments keeps instruments with ROI above the median ROI and
// volatility below the median volatility. Values within tolerance of a
// threshold count as ties and are left out
func SelectInstruments(result domain.StatisticsResult) domain.SelectedGroup {
	group := domain.SelectedGroup{
		Members: []domain.SelectedInstrument{},
	}

	ordered := result.Ordered()
	if len(ordered) == 0 {
		return group
	}

	rois := []float64{}
	volatilities := []float64{}
	for _, s := range ordered {
		rois = append(rois, s.ROI)
		volatilities = append(volatilities, s.Volatility)
	}

	// inputs are non-empty, so median cannot fail
	roiThreshold, _ := calculator.Median(rois)
	volatilityThreshold, _ := calculator.Median(volatilities)
	group.RoiThreshold = roiThreshold
	group.VolatilityThreshold = volatilityThreshold

	for _, s := range ordered {
		if calculator.GreaterThan(s.ROI, roiThreshold) && calculator.LessThan(s.Volatility, volatilityThreshold) {
			group.Members = append(group.Members, domain.SelectedInstrument{
				Symbol:     s.Symbol,
				ROI:        s.ROI,
				Volatility: s.Volatility,
			})
		}
	}

	return group
}
