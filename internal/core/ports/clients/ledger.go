package clients

import (
	"context"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// LedgerSource fetches the complete raw trial balance from the external
// ledger system, handling its own authentication.
type LedgerSource interface {
	FetchAll(ctx context.Context) ([]domain.RawLedgerRow, error)
}
