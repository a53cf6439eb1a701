package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	portsrepo "github.com/westwalk/performance_report_app/internal/core/ports/repositories"
	"github.com/westwalk/performance_report_app/internal/models"
	"github.com/westwalk/performance_report_app/internal/utils/mapping"
)

const warehouseColumns = `record_key, year, month, type_r, accountno, auxcode, cc2, cc3, entity, component, category, balance_first, synced_at`

type PgxWarehouseRepository struct {
	BaseRepository
}

// newPgxWarehouseRepository creates a new repository for synced warehouse data.
func newPgxWarehouseRepository(pool *pgxpool.Pool) portsrepo.WarehouseRepository {
	return &PgxWarehouseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WarehouseRepository = (*PgxWarehouseRepository)(nil)

// Replace deletes the previously synced slice (posted rows, reporting period)
// and upserts the given set under its natural keys, in one transaction.
func (r *PgxWarehouseRepository) Replace(ctx context.Context, recs []domain.WarehouseRecord) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM warehouse_trial_balance WHERE type_r = $1 AND year >= $2;`,
		domain.PostType, domain.ReportingFloorYear,
	); err != nil {
		return 0, fmt.Errorf("failed to clear warehouse records: %w", err)
	}

	query := `
		INSERT INTO warehouse_trial_balance (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (record_key) DO UPDATE SET
			type_r = EXCLUDED.type_r,
			auxcode = EXCLUDED.auxcode,
			cc2 = EXCLUDED.cc2,
			entity = EXCLUDED.entity,
			component = EXCLUDED.component,
			category = EXCLUDED.category,
			balance_first = EXCLUDED.balance_first,
			synced_at = EXCLUDED.synced_at;
	`
	batch := &pgx.Batch{}
	for _, rec := range recs {
		m := mapping.ToModelWarehouseTrialBalance(rec)
		batch.Queue(query,
			m.RecordKey, m.Year, m.Month, m.TypeR, m.AccountNo,
			m.AuxCode, m.CC2, m.CC3, m.Entity, m.Component,
			m.Category, m.BalanceFirst, m.SyncedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range recs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("failed to upsert warehouse record: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush warehouse batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// Find returns warehouse records matching the filter.
func (r *PgxWarehouseRepository) Find(ctx context.Context, f domain.WarehouseFilter) ([]domain.WarehouseRecord, error) {
	var conds []string
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Entity != "" {
		add("entity = $%d", f.Entity)
	}
	if f.Year != 0 {
		add("year = $%d", f.Year)
	}
	if f.Month != 0 {
		add("month = $%d", f.Month)
	}
	if f.Category != "" {
		add("category = $%d", string(f.Category))
	}
	if f.AccountNo != "" {
		add("accountno = $%d", f.AccountNo)
	}
	if f.TypeR != "" {
		add("type_r = $%d", f.TypeR)
	}

	query := `SELECT ` + warehouseColumns + ` FROM warehouse_trial_balance`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY year, month, accountno;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse records: %w", err)
	}
	defer rows.Close()

	var recs []domain.WarehouseRecord
	for rows.Next() {
		var m models.WarehouseTrialBalance
		if err := rows.Scan(
			&m.RecordKey, &m.Year, &m.Month, &m.TypeR, &m.AccountNo,
			&m.AuxCode, &m.CC2, &m.CC3, &m.Entity, &m.Component,
			&m.Category, &m.BalanceFirst, &m.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse row: %w", err)
		}
		recs = append(recs, mapping.ToDomainWarehouseRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read warehouse rows: %w", err)
	}
	return recs, nil
}
