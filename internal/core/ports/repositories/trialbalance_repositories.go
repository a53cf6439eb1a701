package repositories

import (
	"context"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// TrialBalanceRepository defines operations on the unified trial-balance
// collection.
type TrialBalanceRepository interface {
	// ReplaceAll clears the collection and bulk-upserts the given records
	// under their natural keys, atomically in one transaction. Returns the
	// number of records written.
	ReplaceAll(ctx context.Context, recs []domain.TrialBalanceRecord) (int, error)

	// Find returns monthly records matching the filter, plus any
	// still-unexpanded yearly-cost-view records matching it (month=0
	// documents escape the monthly range check via their viewKind).
	Find(ctx context.Context, f domain.TrialBalanceFilter) ([]domain.TrialBalanceRecord, error)
}

// BudgetRepository defines operations on the budgeted-amount collection.
type BudgetRepository interface {
	// ReplaceForEntityYear deletes all budget rows for (entity, year) and
	// inserts the given set, atomically in one transaction.
	ReplaceForEntityYear(ctx context.Context, entity string, year int, recs []domain.BudgetRecord) (int, error)

	// Find returns budget rows matching the filter.
	Find(ctx context.Context, f domain.BudgetFilter) ([]domain.BudgetRecord, error)
}
