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

const trialBalanceColumns = `record_key, record_kind, year, month, type_r, accountno, auxcode, cc2, cc3, entity, component, category, balance_first, view_kind, total_balances, total_sum, synced_at`

type PgxTrialBalanceRepository struct {
	BaseRepository
}

// newPgxTrialBalanceRepository creates a new repository for trial-balance data.
func newPgxTrialBalanceRepository(pool *pgxpool.Pool) portsrepo.TrialBalanceRepository {
	return &PgxTrialBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TrialBalanceRepository = (*PgxTrialBalanceRepository)(nil)

// ReplaceAll clears the collection and re-fills it from the given records in
// one transaction. The clear happens here, after the caller's fetch and
// transform have already succeeded, so a failed sync never empties the table.
func (r *PgxTrialBalanceRepository) ReplaceAll(ctx context.Context, recs []domain.TrialBalanceRecord) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := r.DeleteAll(ctx, tx); err != nil {
		return 0, err
	}
	saved, err := r.BulkUpsert(ctx, tx, recs)
	if err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return saved, nil
}

// DeleteAll removes every stored record within the given transaction.
func (r *PgxTrialBalanceRepository) DeleteAll(ctx context.Context, tx pgx.Tx) (int, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM trial_balance;`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear trial balance: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// BulkUpsert writes records under their natural keys within the given
// transaction. Records sharing a key collapse onto one row, so re-running a
// sync over identical upstream data changes nothing.
func (r *PgxTrialBalanceRepository) BulkUpsert(ctx context.Context, tx pgx.Tx, recs []domain.TrialBalanceRecord) (int, error) {
	query := `
		INSERT INTO trial_balance (` + trialBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (record_key) DO UPDATE SET
			record_kind = EXCLUDED.record_kind,
			type_r = EXCLUDED.type_r,
			cc2 = EXCLUDED.cc2,
			entity = EXCLUDED.entity,
			component = EXCLUDED.component,
			category = EXCLUDED.category,
			balance_first = EXCLUDED.balance_first,
			view_kind = EXCLUDED.view_kind,
			total_balances = EXCLUDED.total_balances,
			total_sum = EXCLUDED.total_sum,
			synced_at = EXCLUDED.synced_at;
	`

	batch := &pgx.Batch{}
	for _, rec := range recs {
		m, err := mapping.ToModelTrialBalance(rec)
		if err != nil {
			return 0, err
		}
		batch.Queue(query,
			m.RecordKey, m.RecordKind, m.Year, m.Month, m.TypeR,
			m.AccountNo, m.AuxCode, m.CC2, m.CC3, m.Entity,
			m.Component, m.Category, m.BalanceFirst, m.ViewKind,
			m.TotalBalances, m.TotalSum, m.SyncedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range recs {
		if _, err := results.Exec(); err != nil {
			return 0, fmt.Errorf("failed to upsert trial balance record: %w", err)
		}
	}
	return len(recs), nil
}

// Find returns records matching the filter, ordered year, month, accountno.
// Yearly cost documents match regardless of any implied month semantics;
// month filtering is the read service's job, after expansion.
func (r *PgxTrialBalanceRepository) Find(ctx context.Context, f domain.TrialBalanceFilter) ([]domain.TrialBalanceRecord, error) {
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
	if f.Category != "" {
		add("category = $%d", string(f.Category))
	}
	if f.AccountNo != "" {
		add("accountno = $%d", f.AccountNo)
	}
	if f.Component != "" {
		add("component ILIKE $%d", "%"+f.Component+"%")
	}
	if f.AuxCode != "" {
		add("auxcode = $%d", f.AuxCode)
	}
	if f.CC2 != "" {
		add("cc2 = $%d", f.CC2)
	}
	if f.CC3 != "" {
		add("cc3 = $%d", f.CC3)
	}
	if f.TypeR != "" {
		add("type_r = $%d", f.TypeR)
	}

	query := `SELECT ` + trialBalanceColumns + ` FROM trial_balance`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY year, month, accountno;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trial balance: %w", err)
	}
	defer rows.Close()

	var recs []domain.TrialBalanceRecord
	for rows.Next() {
		var m models.TrialBalance
		if err := rows.Scan(
			&m.RecordKey, &m.RecordKind, &m.Year, &m.Month, &m.TypeR,
			&m.AccountNo, &m.AuxCode, &m.CC2, &m.CC3, &m.Entity,
			&m.Component, &m.Category, &m.BalanceFirst, &m.ViewKind,
			&m.TotalBalances, &m.TotalSum, &m.SyncedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trial balance row: %w", err)
		}
		rec, err := mapping.ToDomainTrialBalance(m)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trial balance rows: %w", err)
	}
	return recs, nil
}
