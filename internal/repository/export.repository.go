package repository

import (
	"fmt"
	"io"
	"os"

	"fundplanner/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

type ExportRepository interface {
	WriteAllocation(w io.Writer, plan domain.AllocationPlan) error
	SaveAllocation(path string, plan domain.AllocationPlan) error
	ReadAllocation(r io.Reader) (*domain.AllocationPlan, error)
	WriteStatistics(w io.Writer, result domain.StatisticsResult) error
	SaveStatistics(path string, result domain.StatisticsResult) error
}

func NewExportRepository() ExportRepository {
	return exportRepositoryHandler{}
}

type exportRepositoryHandler struct{}

type allocationRow struct {
	Instrument string          `csv:"Instrument"`
	Weight     decimal.Decimal `csv:"Weight"`
}

type statisticsRow struct {
	Instrument    string          `csv:"Instrument"`
	Volatility    decimal.Decimal `csv:"Volatility"`
	AverageGrowth decimal.Decimal `csv:"AverageGrowth"`
	ROI           decimal.Decimal `csv:"ROI"`
}

// weights are written at full precision so a reloaded plan still sums
// to 100
func (h exportRepositoryHandler) WriteAllocation(w io.Writer, plan domain.AllocationPlan) error {
	rows := []allocationRow{}
	for _, weight := range plan.Weights {
		rows = append(rows, allocationRow{
			Instrument: weight.Symbol,
			Weight:     decimal.NewFromFloat(weight.Weight),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write allocation csv: %w", err)
	}
	return nil
}

func (h exportRepositoryHandler) SaveAllocation(path string, plan domain.AllocationPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := h.WriteAllocation(f, plan); err != nil {
		return err
	}
	return f.Close()
}

func (h exportRepositoryHandler) ReadAllocation(r io.Reader) (*domain.AllocationPlan, error) {
	rows := []allocationRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read allocation csv: %w", err)
	}

	plan := domain.AllocationPlan{
		Weights: []domain.AllocationWeight{},
	}
	for _, row := range rows {
		plan.Weights = append(plan.Weights, domain.AllocationWeight{
			Symbol: row.Instrument,
			Weight: row.Weight.InexactFloat64(),
		})
	}
	return &plan, nil
}

func (h exportRepositoryHandler) WriteStatistics(w io.Writer, result domain.StatisticsResult) error {
	rows := []statisticsRow{}
	for _, s := range result.Ordered() {
		rows = append(rows, statisticsRow{
			Instrument:    s.Symbol,
			Volatility:    decimal.NewFromFloat(s.Volatility).Round(6),
			AverageGrowth: decimal.NewFromFloat(s.AverageGrowth).Round(6),
			ROI:           decimal.NewFromFloat(s.ROI).Round(6),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write statistics csv: %w", err)
	}
	return nil
}

func (h exportRepositoryHandler) SaveStatistics(path string, result domain.StatisticsResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := h.WriteStatistics(f, result); err != nil {
		return err
	}
	return f.Close()
}
