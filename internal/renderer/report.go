package renderer

import (
	"fmt"
	"io"

	"fundplanner/internal/domain"
	l3_service "fundplanner/internal/service/l3"

	"github.com/olekukonko/tablewriter"
)

type Renderer struct {
	out      io.Writer
	currency string
}

func New(out io.Writer, currency string) *Renderer {
	return &Renderer{
		out:      out,
		currency: currency,
	}
}

// Plan prints every table of a run
func (r *Renderer) Plan(result *l3_service.PlanResult) {
	fmt.Fprintf(r.out, "\nRun %s\n", result.RunID)
	fmt.Fprintf(r.out, "Monthly investment: %s | Expected annual rate (informational): %s\n",
		FormatMoney(result.Params.MonthlyInvestment, r.currency),
		formatPercent(result.Params.InterestRate),
	)

	r.Statistics(result.Statistics)
	r.Selection(result.Selection)
	r.Allocation(result.Allocation)
	if result.Projection != nil {
		r.Projection(*result.Projection)
	} else if result.ProjectionError != nil {
		fmt.Fprintf(r.out, "\nNo projection: %s\n", *result.ProjectionError)
	}
}

func (r *Renderer) Statistics(result domain.StatisticsResult) {
	fmt.Fprintln(r.out, "\nRisk and growth by instrument")
	table := tablewriter.NewWriter(r.out)
	table.Header("Instrument", "Volatility", "Avg Growth", "ROI")
	for _, s := range result.Ordered() {
		table.Append(
			s.Symbol,
			formatNumber(s.Volatility),
			formatPercent(s.AverageGrowth),
			formatPercent(s.ROI),
		)
	}
	table.Render()

	for _, e := range result.Excluded {
		fmt.Fprintf(r.out, "  excluded %s: %v\n", e.Symbol, e.Reason)
	}
}

func (r *Renderer) Selection(group domain.SelectedGroup) {
	fmt.Fprintf(r.out, "\nSelected instruments (ROI > %s, volatility < %s)\n",
		formatPercent(group.RoiThreshold),
		formatNumber(group.VolatilityThreshold),
	)
	if group.IsEmpty() {
		fmt.Fprintln(r.out, "  none")
		return
	}
	table := tablewriter.NewWriter(r.out)
	table.Header("Instrument", "ROI", "Volatility")
	for _, m := range group.Members {
		table.Append(m.Symbol, formatPercent(m.ROI), formatNumber(m.Volatility))
	}
	table.Render()
}

func (r *Renderer) Allocation(plan domain.AllocationPlan) {
	fmt.Fprintln(r.out, "\nInvestment ratios")
	if plan.IsEmpty() {
		fmt.Fprintln(r.out, "  none")
	} else {
		table := tablewriter.NewWriter(r.out)
		table.Header("Instrument", "Weight")
		for _, w := range plan.Weights {
			table.Append(w.Symbol, formatPercent(w.Weight))
		}
		table.Render()
	}
	for _, e := range plan.Excluded {
		fmt.Fprintf(r.out, "  excluded %s: %v\n", e.Symbol, e.Reason)
	}
}

func (r *Renderer) Projection(result domain.ProjectionResult) {
	fmt.Fprintf(r.out, "\nExpected value of %s per month at %s a year\n",
		FormatMoney(result.MonthlyInvestment, r.currency),
		formatPercent(result.AnnualRate*100),
	)
	table := tablewriter.NewWriter(r.out)
	table.Header("Horizon", "Future Value")
	for _, p := range result.Points {
		table.Append(p.Label(), FormatMoney(p.FutureValue, r.currency))
	}
	table.Render()
}
