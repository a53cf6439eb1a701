package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	TrialBalanceRepo TrialBalanceRepository
	BudgetRepo       BudgetRepository
	WarehouseRepo    WarehouseRepository
	WarehouseSource  WarehouseSource
}
