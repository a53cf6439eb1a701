package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
	clients "github.com/westwalk/performance_report_app/internal/core/ports/clients"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/middleware"
)

type syncService struct {
	ledger clients.LedgerSource
	repo   portsrepo.TrialBalanceRepository

	// Serializes sync runs. Two concurrent runs would race on the
	// clear-then-repopulate step, so the second caller is rejected
	// instead of queued.
	runGuard sync.Mutex
}

// NewSyncService creates the trial-balance sync service.
func NewSyncService(ledger clients.LedgerSource, repo portsrepo.TrialBalanceRepository) portssvc.SyncSvcFacade {
	return &syncService{ledger: ledger, repo: repo}
}

func (s *syncService) Sync(ctx context.Context) (*domain.SyncSummary, error) {
	if !s.runGuard.TryLock() {
		return nil, apperrors.ErrSyncInProgress
	}
	defer s.runGuard.Unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	// Fetch before touching stored data: a failed fetch must not leave the
	// collection empty.
	raw, err := s.ledger.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("trial balance fetch failed: %w", err)
	}

	result := pipeline.Run(raw, time.Now().UTC())

	saved, err := s.repo.ReplaceAll(ctx, result.Records())
	if err != nil {
		return nil, fmt.Errorf("trial balance persist failed: %w", err)
	}

	summary := &domain.SyncSummary{
		TotalEnriched:       result.EnrichedCount,
		RevenueRowsInput:    result.RevenueInput,
		RevenueRowsAfterAgg: len(result.Revenue),
		ManPowerRowsInput:   result.ManPowerInput,
		ManPowerRowsSplit:   len(result.ManPower),
		CostRowsInput:       result.CostInput,
		CostYearlyGroups:    result.CostYearlyCount,
		CostMonthlyRows:     len(result.CostMonthly),
		UnclassifiedRows:    result.UnclassifiedCount,
		TotalSaved:          saved,
	}

	logger.Info("Trial balance sync completed",
		slog.Int("enriched", summary.TotalEnriched),
		slog.Int("revenue_saved", summary.RevenueRowsAfterAgg),
		slog.Int("manpower_saved", summary.ManPowerRowsSplit),
		slog.Int("cost_monthly_saved", summary.CostMonthlyRows),
		slog.Int("total_saved", summary.TotalSaved),
	)

	return summary, nil
}

func (s *syncService) Preview(ctx context.Context) ([]domain.EnrichedRow, error) {
	raw, err := s.ledger.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("trial balance fetch failed: %w", err)
	}
	return pipeline.FilterAndEnrich(raw, time.Now().UTC()), nil
}
