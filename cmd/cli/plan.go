package main

import (
	"context"
	"fmt"

	"fundplanner/api"
	"fundplanner/cmd"
	"fundplanner/internal/domain"
	"fundplanner/internal/logger"
	"fundplanner/internal/repository"
	l1_service "fundplanner/internal/service/l1"
	l3_service "fundplanner/internal/service/l3"

	"github.com/spf13/cobra"
)

// planFlags are shared by every command that runs the pipeline. Unset
// flags fall back to the config
type planFlags struct {
	monthlyInvestment float64
	interestRate      float64
	horizons          string
}

func (f *planFlags) register(c *cobra.Command) {
	c.Flags().Float64Var(&f.monthlyInvestment, "monthly-investment", 0, "amount invested every month")
	c.Flags().Float64Var(&f.interestRate, "interest-rate", 0, "expected annual rate in percent, informational only")
	c.Flags().StringVar(&f.horizons, "horizons", "", "comma separated investment horizons in years")
}

func (f *planFlags) params(c *cobra.Command, handler *api.ApiHandler) (*domain.PlanParams, error) {
	monthlyInvestment := handler.Config.Plan.MonthlyInvestment
	if c.Flags().Changed("monthly-investment") {
		monthlyInvestment = f.monthlyInvestment
	}
	interestRate := handler.Config.Plan.InterestRate
	if c.Flags().Changed("interest-rate") {
		interestRate = f.interestRate
	}
	horizons := handler.Config.Plan.Horizons
	if c.Flags().Changed("horizons") {
		horizons = f.horizons
	}

	params, err := domain.NewPlanParams(monthlyInvestment, interestRate, horizons)
	if err != nil {
		return nil, domain.NewStageError(domain.Stage_Params, err)
	}
	return params, nil
}

func initialize(opts *rootOptions) (*api.ApiHandler, error) {
	handler, err := cmd.InitializeDependencies(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.pricesPath != "" {
		handler.Config.Data.PricesPath = opts.pricesPath
		handler.DatasetService = l1_service.NewDatasetService(repository.NewCsvPriceSourceRepository(opts.pricesPath))
	}
	return handler, nil
}

func runPlan(ctx context.Context, handler *api.ApiHandler, params domain.PlanParams) (*l3_service.PlanResult, error) {
	dataset, err := handler.DatasetService.Load(ctx)
	if err != nil {
		return nil, domain.NewStageError(domain.Stage_Load, err)
	}
	domain.GetPerformanceProfile(ctx).Add(string(domain.Stage_Load))

	result, err := handler.PlannerService.Plan(ctx, *dataset, params)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// commandContext attaches the handler logger and a fresh profile
func commandContext(c *cobra.Command, handler *api.ApiHandler) context.Context {
	ctx := logger.NewContext(c.Context(), handler.Logger)
	return context.WithValue(ctx, domain.ContextProfileKey, domain.NewPeformanceProfile())
}

func loadAndPlan(c *cobra.Command, opts *rootOptions, flags *planFlags) (*api.ApiHandler, *l3_service.PlanResult, error) {
	handler, err := initialize(opts)
	if err != nil {
		return nil, nil, err
	}
	params, err := flags.params(c, handler)
	if err != nil {
		return handler, nil, err
	}
	result, err := runPlan(commandContext(c, handler), handler, *params)
	if err != nil {
		return handler, nil, fmt.Errorf("failed to build plan: %w", err)
	}
	return handler, result, nil
}
