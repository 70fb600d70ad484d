package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Tolerance used when comparing computed values against thresholds
const Tolerance = 1e-9

// SampleStdev is the n-1 standard deviation of the given values
func SampleStdev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("cannot compute sample stdev of %d value(s)", len(values))
	}
	stdev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	return stdev, nil
}

func Mean(values []float64) (float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean: %w", err)
	}
	return mean, nil
}

// Median averages the two middle values for even sized input
func Median(values []float64) (float64, error) {
	median, err := stats.Median(values)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate median: %w", err)
	}
	return median, nil
}

// PercentChange returns (end-start)/start*100, or false when start is zero
func PercentChange(start, end float64) (float64, bool) {
	if start == 0 {
		return 0, false
	}
	return ((end - start) / start) * 100, true
}

func GreaterThan(a, b float64) bool {
	return a-b > Tolerance
}

func LessThan(a, b float64) bool {
	return b-a > Tolerance
}

func ApproxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
