package services

import (
	clients "github.com/westwalk/performance_report_app/internal/core/ports/clients"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, ledger clients.LedgerSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Sync = NewSyncService(ledger, repos.TrialBalanceRepo)
	container.Report = NewReportService(repos.TrialBalanceRepo, repos.BudgetRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Warehouse = NewWarehouseService(repos.WarehouseSource, repos.WarehouseRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SyncSvcFacade      = (*syncService)(nil)
	_ portssvc.ReportSvcFacade    = (*reportService)(nil)
	_ portssvc.BudgetSvcFacade    = (*budgetService)(nil)
	_ portssvc.WarehouseSvcFacade = (*warehouseService)(nil)
)
