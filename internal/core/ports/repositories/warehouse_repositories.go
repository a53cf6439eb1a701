package repositories

import (
	"context"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// WarehouseSource reads the legacy SQL warehouse's cost-center analysis
// view. Read-only; the warehouse is owned by another system.
type WarehouseSource interface {
	// FetchRows returns all posted rows from the reporting period onward.
	FetchRows(ctx context.Context) ([]domain.WarehouseRow, error)
}

// WarehouseRepository stores normalized warehouse records on the reporting
// side.
type WarehouseRepository interface {
	// Replace deletes previously synced rows (posted, reporting period) and
	// upserts the given set keyed (year, month, accountno, cc3).
	Replace(ctx context.Context, recs []domain.WarehouseRecord) (int, error)

	// Find returns warehouse records matching the filter.
	Find(ctx context.Context, f domain.WarehouseFilter) ([]domain.WarehouseRecord, error)
}
