package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
)

// PgxWarehouseSource reads the legacy warehouse's cost-center analysis view
// over a second connection pool. The warehouse is owned by another system;
// this side only ever selects from it.
type PgxWarehouseSource struct {
	pool *pgxpool.Pool
}

// NewPgxWarehouseSource creates a read-only source over the warehouse pool.
func NewPgxWarehouseSource(pool *pgxpool.Pool) portsrepo.WarehouseSource {
	return &PgxWarehouseSource{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.WarehouseSource = (*PgxWarehouseSource)(nil)

// FetchRows returns all posted rows from the reporting period onward.
func (s *PgxWarehouseSource) FetchRows(ctx context.Context) ([]domain.WarehouseRow, error) {
	query := `
		SELECT year, month, type_r, accountno, auxcode, cc2, cc3, balance_first, company_name, level5
		FROM cost_center_analysis
		WHERE type_r = $1 AND year >= $2;
	`
	rows, err := s.pool.Query(ctx, query, domain.PostType, domain.ReportingFloorYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse view: %w", err)
	}
	defer rows.Close()

	var out []domain.WarehouseRow
	for rows.Next() {
		var r domain.WarehouseRow
		if err := rows.Scan(
			&r.Year, &r.Month, &r.TypeR, &r.AccountNo, &r.AuxCode,
			&r.CC2, &r.CC3, &r.BalanceFirst, &r.CompanyName, &r.Level5,
		); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse view row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read warehouse view rows: %w", err)
	}
	return out, nil
}
