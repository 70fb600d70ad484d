package domain

type AllocationWeight struct {
	Symbol string `json:"symbol"`
	// percent of the monthly investment
	Weight float64 `json:"weight"`
}

type AllocationPlan struct {
	Weights  []AllocationWeight `json:"weights"`
	Excluded []Exclusion        `json:"excluded"`
}

func (p AllocationPlan) Sum() float64 {
	sum := 0.0
	for _, w := range p.Weights {
		sum += w.Weight
	}
	return sum
}

func (p AllocationPlan) Get(symbol string) (float64, bool) {
	for _, w := range p.Weights {
		if w.Symbol == symbol {
			return w.Weight, true
		}
	}
	return 0, false
}

func (p AllocationPlan) IsEmpty() bool {
	return len(p.Weights) == 0
}
