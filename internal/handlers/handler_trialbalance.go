package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/dto"
	"github.com/westwalk/performance_report_app/internal/middleware"
	"github.com/westwalk/performance_report_app/internal/platform/config"
)

// trialBalanceHandler handles sync and reporting requests.
type trialBalanceHandler struct {
	syncService   portssvc.SyncSvcFacade
	reportService portssvc.ReportSvcFacade
	cfg           *config.Config
}

func newTrialBalanceHandler(ss portssvc.SyncSvcFacade, rs portssvc.ReportSvcFacade, cfg *config.Config) *trialBalanceHandler {
	return &trialBalanceHandler{
		syncService:   ss,
		reportService: rs,
		cfg:           cfg,
	}
}

// registerTrialBalanceRoutes registers the trial-balance routes.
func registerTrialBalanceRoutes(rg *gin.RouterGroup, ss portssvc.SyncSvcFacade, rs portssvc.ReportSvcFacade, cfg *config.Config) {
	h := newTrialBalanceHandler(ss, rs, cfg)

	tb := rg.Group("/trialbalance")
	{
		tb.POST("/sync", h.sync)
		tb.GET("/records", h.records)
		tb.POST("/preview", h.preview)
	}
}

func (h *trialBalanceHandler) sync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.syncService.Sync(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrSyncInProgress) {
			logger.Warn("Sync rejected, another run in progress")
			c.JSON(http.StatusConflict, dto.ErrorResponse{Message: "a sync is already running"})
			return
		}
		logger.Error("Trial balance sync failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "trial balance sync failed"})
		return
	}

	c.JSON(http.StatusOK, dto.SyncResponse{
		Message: "trial balance synced",
		Count:   summary.TotalSaved,
		Summary: summary,
	})
}

func (h *trialBalanceHandler) records(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordsQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid records query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid query parameters: " + err.Error()})
		return
	}

	res, err := h.reportService.Query(c.Request.Context(), req.ToReportQuery())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		logger.Error("Records query failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "records query failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRecordsResponse(res))
}

func (h *trialBalanceHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.syncService.Preview(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrConfiguration) {
			logger.Error("Preview misconfigured", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "ledger source not configured"})
			return
		}
		logger.Error("Preview failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "trial balance preview failed"})
		return
	}

	c.JSON(http.StatusOK, dto.PreviewResponse{
		Username: h.cfg.DolphinUsername,
		CmpSeq:   h.cfg.DolphinCmpSeq,
		Count:    len(rows),
		Data:     rows,
	})
}
