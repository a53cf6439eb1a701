package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
)

// NewRepositoryProvider bundles the repositories over the reporting pool and
// the read-only source over the warehouse pool. warehousePool may be nil when
// no warehouse is configured; the warehouse endpoints then fail on use, not
// at startup.
func NewRepositoryProvider(dbPool, warehousePool *pgxpool.Pool) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		TrialBalanceRepo: newPgxTrialBalanceRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		WarehouseRepo:    newPgxWarehouseRepository(dbPool),
	}
	if warehousePool != nil {
		provider.WarehouseSource = NewPgxWarehouseSource(warehousePool)
	}
	return provider
}
