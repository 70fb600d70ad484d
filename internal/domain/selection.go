package domain

type SelectedInstrument struct {
	Symbol     string  `json:"symbol"`
	ROI        float64 `json:"roi"`
	Volatility float64 `json:"volatility"`
}

type SelectedGroup struct {
	RoiThreshold        float64              `json:"roiThreshold"`
	VolatilityThreshold float64              `json:"volatilityThreshold"`
	Members             []SelectedInstrument `json:"members"`
}

func (g SelectedGroup) IsEmpty() bool {
	return len(g.Members) == 0
}

func (g SelectedGroup) Symbols() []string {
	out := []string{}
	for _, m := range g.Members {
		out = append(out, m.Symbol)
	}
	return out
}
