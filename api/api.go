package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fundplanner/internal/domain"
	"fundplanner/internal/logger"
	"fundplanner/internal/repository"
	l1_service "fundplanner/internal/service/l1"
	l3_service "fundplanner/internal/service/l3"
	"fundplanner/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	DatasetService   l1_service.DatasetService
	PlannerService   l3_service.PlannerService
	ExportRepository repository.ExportRepository
	ChartRepository  repository.ChartRepository
	// optional
	LatencyTrackingRepository repository.LatencyTrackingRepository
	Config                    util.Config
	Logger                    *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundplanner"})
	})
	router.POST("/analyze", m.analyze)
	router.POST("/allocation.csv", m.exportAllocation)
	router.POST("/statistics.csv", m.exportStatistics)
	router.POST("/charts/:name", m.renderChart)
	router.GET("/latency", m.latency)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

type errorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

// user errors are 400s, everything else is on us
func statusForError(err error) int {
	if errors.Is(err, domain.ErrDataFormat) || errors.Is(err, domain.ErrInputParse) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusForError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(requestContext(c)).Errorw("request failed", "error", err.Error(), "status", code)
	resp := errorResponse{
		Error: err.Error(),
	}
	stageErr := domain.StageError{}
	if errors.As(err, &stageErr) {
		resp.Stage = string(stageErr.Stage)
	}
	c.AbortWithStatusJSON(code, resp)
}

const requestContextKey = "requestContext"

func requestContext(c *gin.Context) context.Context {
	if ctx, ok := c.Get(requestContextKey); ok {
		if out, ok := ctx.(context.Context); ok {
			return out
		}
	}
	return c.Request.Context()
}

// logRequestMiddlware tags every request with an id and hands a request
// scoped logger and performance profile down through the context
func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	requestID := uuid.New()
	c.Set("requestID", requestID.String())

	base := m.Logger
	if base == nil {
		base = zap.S()
	}
	log := base.With("requestID", requestID.String())

	profile := domain.NewPeformanceProfile()
	ctx := logger.NewContext(c.Request.Context(), log)
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	c.Set(requestContextKey, ctx)

	start := time.Now().UTC()
	c.Next()

	profile.End()
	if m.LatencyTrackingRepository != nil {
		if err := m.LatencyTrackingRepository.Add(*profile, &requestID); err != nil {
			log.Warnw("failed to track latency", "error", err.Error())
		}
	}
	log.Infow("request completed",
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

func (m ApiHandler) latency(c *gin.Context) {
	records := []repository.LatencyRecord{}
	if m.LatencyTrackingRepository != nil {
		records = m.LatencyTrackingRepository.List()
	}
	c.JSON(200, records)
}
