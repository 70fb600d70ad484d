package cmd

import (
	"fmt"

	"fundplanner/api"
	"fundplanner/internal/logger"
	"fundplanner/internal/repository"
	l1_service "fundplanner/internal/service/l1"
	l3_service "fundplanner/internal/service/l3"
	"fundplanner/internal/util"
)

// DefaultConfigPath is read relative to the working directory. The file is
// optional
const DefaultConfigPath = "config.yaml"

func InitializeDependencies(configPath string) (*api.ApiHandler, error) {
	config, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New()

	priceSourceRepository := repository.NewCsvPriceSourceRepository(config.Data.PricesPath)
	datasetService := l1_service.NewDatasetService(priceSourceRepository)
	plannerService := l3_service.NewPlannerService()

	apiHandler := &api.ApiHandler{
		DatasetService:            datasetService,
		PlannerService:            plannerService,
		ExportRepository:          repository.NewExportRepository(),
		ChartRepository:           repository.NewChartRepository(),
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(repository.DefaultLatencyTrackingCapacity),
		Config:                    *config,
		Logger:                    log,
	}

	log.Debugw("dependencies initialized", "pricesPath", config.Data.PricesPath, "currency", config.Plan.Currency)

	return apiHandler, nil
}

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Logger != nil {
		_ = handler.Logger.Sync()
	}
}
