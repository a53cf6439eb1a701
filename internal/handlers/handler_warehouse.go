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
)

// warehouseHandler handles legacy warehouse sync and queries.
type warehouseHandler struct {
	warehouseService portssvc.WarehouseSvcFacade
}

func newWarehouseHandler(ws portssvc.WarehouseSvcFacade) *warehouseHandler {
	return &warehouseHandler{warehouseService: ws}
}

// registerWarehouseRoutes registers the warehouse routes.
func registerWarehouseRoutes(rg *gin.RouterGroup, ws portssvc.WarehouseSvcFacade) {
	h := newWarehouseHandler(ws)

	wh := rg.Group("/warehouse")
	{
		wh.POST("/sync", h.sync)
		wh.GET("/records", h.records)
	}
}

func (h *warehouseHandler) sync(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	saved, err := h.warehouseService.Sync(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSyncInProgress):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Message: "a warehouse sync is already running"})
		case errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Warehouse sync misconfigured", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "warehouse database not configured"})
		default:
			logger.Error("Warehouse sync failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "warehouse sync failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.WarehouseSyncResponse{
		Success: true,
		Message: "warehouse synced",
		Count:   saved,
	})
}

func (h *warehouseHandler) records(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WarehouseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid query parameters: " + err.Error()})
		return
	}

	recs, err := h.warehouseService.List(c.Request.Context(), req.ToWarehouseFilter())
	if err != nil {
		logger.Error("Warehouse list failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "warehouse query failed"})
		return
	}

	c.JSON(http.StatusOK, dto.WarehouseListResponse{
		Success: true,
		Count:   len(recs),
		Data:    recs,
	})
}
