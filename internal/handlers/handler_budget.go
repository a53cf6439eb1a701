package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/dto"
	"github.com/westwalk/performance_report_app/internal/middleware"
)

// maxBudgetUploadBytes bounds the accepted sheet size. Real exports are well
// under a megabyte.
const maxBudgetUploadBytes = 10 << 20

// budgetHandler handles budget sheet uploads and queries.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers the budget routes.
func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(bs)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("/upload", h.upload)
		budgets.GET("", h.list)
	}
}

func (h *budgetHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var form dto.BudgetUploadForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Invalid budget upload form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "entity and year are required: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file is required"})
		return
	}
	if fileHeader.Size > maxBudgetUploadBytes {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "failed to read uploaded file"})
		return
	}
	defer file.Close()

	csvData, err := io.ReadAll(io.LimitReader(file, maxBudgetUploadBytes))
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "failed to read uploaded file"})
		return
	}

	saved, err := h.budgetService.UploadCSV(c.Request.Context(), form.Entity, form.Year, csvData)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Budget upload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		logger.Error("Budget upload failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "budget upload failed"})
		return
	}

	c.JSON(http.StatusOK, dto.BudgetUploadResponse{
		Success: true,
		Message: "budget uploaded",
		Count:   saved,
	})
}

func (h *budgetHandler) list(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BudgetListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid query parameters: " + err.Error()})
		return
	}

	recs, err := h.budgetService.List(c.Request.Context(), req.ToBudgetFilter())
	if err != nil {
		logger.Error("Budget list failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "budget query failed"})
		return
	}

	c.JSON(http.StatusOK, dto.BudgetListResponse{
		Success: true,
		Count:   len(recs),
		Data:    recs,
	})
}
