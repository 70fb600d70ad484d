package api

import (
	"fundplanner/internal/domain"
	l3_service "fundplanner/internal/service/l3"

	"github.com/gin-gonic/gin"
)

// omitted fields fall back to the configured defaults
type AnalyzeRequest struct {
	MonthlyInvestment *float64 `json:"monthlyInvestment"`
	InterestRate      *float64 `json:"interestRate"`
	Horizons          *string  `json:"horizons"`
}

type AnalyzeResponse struct {
	*l3_service.PlanResult
	Currency string `json:"currency"`
}

func (m ApiHandler) analyze(c *gin.Context) {
	result, ok := m.runPlan(c)
	if !ok {
		return
	}

	c.JSON(200, AnalyzeResponse{
		PlanResult: result,
		Currency:   m.Config.Plan.Currency,
	})
}

// runPlan binds the request, loads the dataset and runs the pipeline. On
// failure the error response is already written
func (m ApiHandler) runPlan(c *gin.Context) (*l3_service.PlanResult, bool) {
	ctx := requestContext(c)

	var requestBody AnalyzeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(err, c, 400)
			return nil, false
		}
	}

	monthlyInvestment := m.Config.Plan.MonthlyInvestment
	if requestBody.MonthlyInvestment != nil {
		monthlyInvestment = *requestBody.MonthlyInvestment
	}
	interestRate := m.Config.Plan.InterestRate
	if requestBody.InterestRate != nil {
		interestRate = *requestBody.InterestRate
	}
	horizons := m.Config.Plan.Horizons
	if requestBody.Horizons != nil {
		horizons = *requestBody.Horizons
	}

	params, err := domain.NewPlanParams(monthlyInvestment, interestRate, horizons)
	if err != nil {
		returnErrorJson(domain.NewStageError(domain.Stage_Params, err), c)
		return nil, false
	}

	dataset, err := m.DatasetService.Load(ctx)
	if err != nil {
		returnErrorJson(domain.NewStageError(domain.Stage_Load, err), c)
		return nil, false
	}
	domain.GetPerformanceProfile(ctx).Add(string(domain.Stage_Load))

	result, err := m.PlannerService.Plan(ctx, *dataset, *params)
	if err != nil {
		returnErrorJson(err, c)
		return nil, false
	}

	return result, true
}
