package l3_service

import (
	"context"
	"errors"
	"fmt"

	"fundplanner/internal/domain"
	"fundplanner/internal/logger"
	l1_service "fundplanner/internal/service/l1"
	l2_service "fundplanner/internal/service/l2"

	"github.com/google/uuid"
)

type PlannerService interface {
	Plan(ctx context.Context, dataset domain.PriceDataset, params domain.PlanParams) (*PlanResult, error)
}

// PlanResult carries everything one run produced. ProjectionError is set
// instead of Projection when nothing was selected
type PlanResult struct {
	RunID           uuid.UUID                  `json:"runID"`
	Params          domain.PlanParams          `json:"params"`
	Statistics      domain.StatisticsResult    `json:"statistics"`
	Selection       domain.SelectedGroup       `json:"selection"`
	Allocation      domain.AllocationPlan      `json:"allocation"`
	Projection      *domain.ProjectionResult   `json:"projection"`
	ProjectionError *string                    `json:"projectionError"`
	Profile         *domain.PerformanceProfile `json:"profile"`
}

type plannerServiceHandler struct{}

func NewPlannerService() PlannerService {
	return plannerServiceHandler{}
}

// Plan runs statistics, selection, allocation and projection over an
// already loaded dataset. Every call builds fresh results
func (h plannerServiceHandler) Plan(ctx context.Context, dataset domain.PriceDataset, params domain.PlanParams) (*PlanResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetPerformanceProfile(ctx)

	result := &PlanResult{
		RunID:   uuid.New(),
		Params:  params,
		Profile: profile,
	}
	log = log.With("runID", result.RunID.String())

	if len(params.Horizons) == 0 {
		return nil, domain.NewStageError(domain.Stage_Params, fmt.Errorf("%w: no horizons given", domain.ErrInputParse))
	}

	result.Statistics = l1_service.ComputeStatistics(dataset)
	profile.Add(string(domain.Stage_Statistics))
	for _, e := range result.Statistics.Excluded {
		log.Infow("instrument excluded from statistics", "symbol", e.Symbol, "reason", e.Reason.Error())
	}

	result.Selection = l2_service.SelectInstruments(result.Statistics)
	profile.Add(string(domain.Stage_Selection))
	log.Debugw("selection computed",
		"roiThreshold", result.Selection.RoiThreshold,
		"volatilityThreshold", result.Selection.VolatilityThreshold,
		"selected", result.Selection.Symbols(),
	)

	allocation, err := l2_service.AllocateInverseVolatility(result.Selection)
	if err != nil {
		return nil, domain.NewStageError(domain.Stage_Allocation, err)
	}
	result.Allocation = *allocation
	profile.Add(string(domain.Stage_Allocation))
	for _, e := range allocation.Excluded {
		log.Infow("instrument excluded from allocation", "symbol", e.Symbol, "reason", e.Reason.Error())
	}

	projection, err := ProjectFutureValue(result.Selection, params)
	if errors.Is(err, domain.ErrNoSelection) {
		msg := domain.NewStageError(domain.Stage_Projection, err).Error()
		result.ProjectionError = &msg
		log.Warnw("no instruments passed selection, skipping projection")
	} else if err != nil {
		return nil, domain.NewStageError(domain.Stage_Projection, err)
	} else {
		result.Projection = projection
	}
	profile.Add(string(domain.Stage_Projection))

	if params.InterestRate > 0 && result.Projection != nil {
		log.Debugw("projection uses average roi, not the entered interest rate",
			"interestRate", params.InterestRate,
			"averageRoi", result.Projection.AnnualRate*100,
		)
	}

	return result, nil
}
