package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fundplanner/internal/domain"
	"fundplanner/internal/util"

	"github.com/vicanso/go-charts/v2"
)

// ChartRepository renders run results as png images
type ChartRepository interface {
	PriceTrends(dataset domain.PriceDataset) ([]byte, error)
	SelectionComparison(group domain.SelectedGroup) ([]byte, error)
	Projection(result domain.ProjectionResult) ([]byte, error)
	Save(dir, name string, png []byte) (string, error)
}

func NewChartRepository() ChartRepository {
	return chartRepositoryHandler{}
}

type chartRepositoryHandler struct{}

// PriceTrends draws every symbol with a complete series on the shared
// date axis. symbols with a leading gap are left out
func (h chartRepositoryHandler) PriceTrends(dataset domain.PriceDataset) ([]byte, error) {
	if dataset.NumRows() < 2 {
		return nil, errors.New("not enough data points")
	}
	xLabels := make([]string, len(dataset.Dates))
	for i, d := range dataset.Dates {
		xLabels[i] = util.FormatDate(d)
	}

	values := [][]float64{}
	names := []string{}
	for _, symbol := range dataset.Symbols {
		if dataset.LeadingGap(symbol) > 0 {
			continue
		}
		series := dataset.Series(symbol).Observed()
		values = append(values, series)
		names = append(names, symbol)
	}
	if len(values) == 0 {
		return nil, errors.New("no complete series to draw")
	}

	split := 10
	if len(xLabels) < split {
		split = len(xLabels)
	}
	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc("Stock Price Trends", "Closing Price"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			BoundaryGap: charts.FalseFlag(),
			SplitNumber: split,
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render price trends: %w", err)
	}
	return p.Bytes()
}

func (h chartRepositoryHandler) SelectionComparison(group domain.SelectedGroup) ([]byte, error) {
	if group.IsEmpty() {
		return nil, domain.ErrNoSelection
	}
	rois := []float64{}
	volatilities := []float64{}
	for _, m := range group.Members {
		rois = append(rois, m.ROI)
		volatilities = append(volatilities, m.Volatility)
	}

	p, err := charts.BarRender(
		[][]float64{rois, volatilities},
		charts.TitleTextOptionFunc("ROI and Volatility of Selected Companies"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data: group.Symbols(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"ROI", "Volatility"},
			Left: charts.PositionRight,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render selection chart: %w", err)
	}
	return p.Bytes()
}

func (h chartRepositoryHandler) Projection(result domain.ProjectionResult) ([]byte, error) {
	if len(result.Points) == 0 {
		return nil, errors.New("no projection points")
	}
	xLabels := []string{}
	values := []float64{}
	for _, point := range result.Points {
		xLabels = append(xLabels, point.Label())
		values = append(values, point.FutureValue)
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(
			"Expected Value of Investments",
			fmt.Sprintf("%.2f per month", result.MonthlyInvestment),
		),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Future Value"}}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render projection chart: %w", err)
	}
	return p.Bytes()
}

func (h chartRepositoryHandler) Save(dir, name string, png []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create chart dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	return path, nil
}
