package services

import (
	"context"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// SyncSvcFacade runs full trial-balance sync cycles against the external
// ledger.
type SyncSvcFacade interface {
	// Sync fetches the ledger snapshot, runs the transformation pipeline and
	// replaces the stored record set. Concurrent calls beyond the first
	// return apperrors.ErrSyncInProgress.
	Sync(ctx context.Context) (*domain.SyncSummary, error)

	// Preview fetches and enriches the current snapshot without persisting
	// anything.
	Preview(ctx context.Context) ([]domain.EnrichedRow, error)
}

// ReportSvcFacade serves budget-annotated, year-over-year comparison views
// of the stored trial balance.
type ReportSvcFacade interface {
	Query(ctx context.Context, q domain.ReportQuery) (*domain.ReportResult, error)
}

// BudgetSvcFacade manages the budgeted-amount dataset.
type BudgetSvcFacade interface {
	// UploadCSV parses a budget CSV and bulk-replaces the (entity, year)
	// slice of the budget set. Returns the number of rows stored.
	UploadCSV(ctx context.Context, entity string, year int, csvData []byte) (int, error)

	List(ctx context.Context, f domain.BudgetFilter) ([]domain.BudgetRecord, error)
}

// WarehouseSvcFacade syncs and serves the legacy warehouse trial balance.
type WarehouseSvcFacade interface {
	Sync(ctx context.Context) (int, error)
	List(ctx context.Context, f domain.WarehouseFilter) ([]domain.WarehouseRecord, error)
}
