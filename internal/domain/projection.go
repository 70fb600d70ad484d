package domain

import "fmt"

const MonthlyCompounding = 12

type ProjectionPoint struct {
	Years       int     `json:"years"`
	FutureValue float64 `json:"futureValue"`
}

func (p ProjectionPoint) Label() string {
	return fmt.Sprintf("%d Years", p.Years)
}

type ProjectionResult struct {
	MonthlyInvestment    float64           `json:"monthlyInvestment"`
	AnnualRate           float64           `json:"annualRate"`
	CompoundingFrequency int               `json:"compoundingFrequency"`
	Points               []ProjectionPoint `json:"points"`
}
