package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultMonthlyInvestment = 5000.0
	DefaultInterestRate      = 12.0
	DefaultHorizons          = "1,3,5,10,15,20,25,30"
)

// PlanParams are the user inputs of a run. InterestRate is collected and
// reported but the projection runs on the selected group's average ROI
type PlanParams struct {
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	InterestRate      float64 `json:"interestRate"`
	Horizons          []int   `json:"horizons"`
}

func NewPlanParams(monthlyInvestment, interestRate float64, horizons string) (*PlanParams, error) {
	if monthlyInvestment <= 0 {
		return nil, fmt.Errorf("%w: monthly investment must be positive, got %v", ErrInputParse, monthlyInvestment)
	}
	if interestRate < 0 {
		return nil, fmt.Errorf("%w: interest rate cannot be negative, got %v", ErrInputParse, interestRate)
	}
	years, err := ParseHorizons(horizons)
	if err != nil {
		return nil, err
	}

	return &PlanParams{
		MonthlyInvestment: monthlyInvestment,
		InterestRate:      interestRate,
		Horizons:          years,
	}, nil
}

// ParseHorizons reads a comma-separated list of whole years. Order and
// duplicates are kept as given
func ParseHorizons(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no horizons given", ErrInputParse)
	}
	out := []int{}
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		years, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: horizon %q is not an integer", ErrInputParse, token)
		}
		if years <= 0 {
			return nil, fmt.Errorf("%w: horizon must be positive, got %d", ErrInputParse, years)
		}
		out = append(out, years)
	}

	return out, nil
}
