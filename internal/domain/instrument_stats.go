package domain

type InstrumentStats struct {
	Symbol string `json:"symbol"`
	// sample standard deviation of the price level
	Volatility float64 `json:"volatility"`
	// mean period-over-period change, in percent
	AverageGrowth float64 `json:"averageGrowth"`
	// percent change from first to last observed price
	ROI float64 `json:"roi"`
	// aligned to the dataset dates, nil where undefined
	PeriodGrowth    []*float64 `json:"periodGrowth"`
	NumObservations int        `json:"numObservations"`
}

type StatisticsResult struct {
	// in dataset column order
	Symbols  []string                   `json:"symbols"`
	Stats    map[string]InstrumentStats `json:"stats"`
	Excluded []Exclusion                `json:"excluded"`
}

// Ordered returns stats for symbols with defined statistics, in
// dataset column order
func (r StatisticsResult) Ordered() []InstrumentStats {
	out := []InstrumentStats{}
	for _, symbol := range r.Symbols {
		if s, ok := r.Stats[symbol]; ok {
			out = append(out, s)
		}
	}
	return out
}
