package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/middleware"
)

type warehouseService struct {
	source portsrepo.WarehouseSource
	repo   portsrepo.WarehouseRepository

	runGuard sync.Mutex
}

// NewWarehouseService creates the legacy-warehouse sync service.
func NewWarehouseService(source portsrepo.WarehouseSource, repo portsrepo.WarehouseRepository) portssvc.WarehouseSvcFacade {
	return &warehouseService{source: source, repo: repo}
}

func (s *warehouseService) Sync(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, fmt.Errorf("warehouse database: %w", apperrors.ErrConfiguration)
	}
	if !s.runGuard.TryLock() {
		return 0, apperrors.ErrSyncInProgress
	}
	defer s.runGuard.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("warehouse fetch failed: %w", err)
	}

	syncedAt := time.Now().UTC()
	recs := make([]domain.WarehouseRecord, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, domain.NormalizeWarehouseRow(r, syncedAt))
	}

	saved, err := s.repo.Replace(ctx, recs)
	if err != nil {
		return 0, fmt.Errorf("warehouse persist failed: %w", err)
	}

	logger.Info("Warehouse sync completed",
		slog.Int("fetched", len(rows)),
		slog.Int("saved", saved),
	)
	return saved, nil
}

func (s *warehouseService) List(ctx context.Context, f domain.WarehouseFilter) ([]domain.WarehouseRecord, error) {
	recs, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("warehouse query failed: %w", err)
	}
	return recs, nil
}
