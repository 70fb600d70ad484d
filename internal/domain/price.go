package domain

import "time"

const DateColumn = "Date"

// RawTable is tabular price input as read from a source. Columns keeps
// the header order, each row maps column name to the raw cell
type RawTable struct {
	Columns []string
	Rows    []map[string]string
}

type Observation struct {
	Date  time.Time
	Price *float64
}

type PriceSeries struct {
	Symbol       string
	Observations []Observation
}

// Observed returns the non-missing prices in date order. On a forward
// filled series this is everything after the leading gap
func (s PriceSeries) Observed() []float64 {
	out := []float64{}
	for _, o := range s.Observations {
		if o.Price != nil {
			out = append(out, *o.Price)
		}
	}
	return out
}

// PriceDataset holds one price column per symbol, aligned to a shared
// ascending date axis. nil entries are missing prices
type PriceDataset struct {
	Dates   []time.Time
	Symbols []string
	Prices  map[string][]*float64
}

func (d PriceDataset) Series(symbol string) PriceSeries {
	prices := d.Prices[symbol]
	observations := make([]Observation, len(d.Dates))
	for i, date := range d.Dates {
		observations[i] = Observation{
			Date: date,
		}
		if i < len(prices) {
			observations[i].Price = prices[i]
		}
	}
	return PriceSeries{
		Symbol:       symbol,
		Observations: observations,
	}
}

func (d PriceDataset) NumRows() int {
	return len(d.Dates)
}

// LeadingGap counts the missing values at the start of a symbol's column
func (d PriceDataset) LeadingGap(symbol string) int {
	n := 0
	for _, p := range d.Prices[symbol] {
		if p != nil {
			break
		}
		n++
	}
	return n
}
