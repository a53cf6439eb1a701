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

const budgetColumns = `record_key, year, month, type_r, accountno, auxcode, cc2, cc3, entity, component, category, balance_first`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budgeted-amount data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// ReplaceForEntityYear deletes the (entity, year) slice of the budget set and
// inserts the given rows in its place, in one transaction. Duplicate keys are
// allowed; the read path sums them.
func (r *PgxBudgetRepository) ReplaceForEntityYear(ctx context.Context, entity string, year int, recs []domain.BudgetRecord) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM budgeted_amount WHERE entity = $1 AND year = $2;`, entity, year); err != nil {
		return 0, fmt.Errorf("failed to clear budget slice for %s/%d: %w", entity, year, err)
	}

	query := `
		INSERT INTO budgeted_amount (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, rec := range recs {
		m := mapping.ToModelBudgetedAmount(rec)
		batch.Queue(query,
			m.RecordKey, m.Year, m.Month, m.TypeR, m.AccountNo,
			m.AuxCode, m.CC2, m.CC3, m.Entity, m.Component,
			m.Category, m.BalanceFirst,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range recs {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("failed to insert budget row: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush budget batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(recs), nil
}

// Find returns budget rows matching the filter.
func (r *PgxBudgetRepository) Find(ctx context.Context, f domain.BudgetFilter) ([]domain.BudgetRecord, error) {
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

	query := `SELECT ` + budgetColumns + ` FROM budgeted_amount`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY year, month, accountno;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgeted amounts: %w", err)
	}
	defer rows.Close()

	var recs []domain.BudgetRecord
	for rows.Next() {
		var m models.BudgetedAmount
		if err := rows.Scan(
			&m.RecordKey, &m.Year, &m.Month, &m.TypeR, &m.AccountNo,
			&m.AuxCode, &m.CC2, &m.CC3, &m.Entity, &m.Component,
			&m.Category, &m.BalanceFirst,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		recs = append(recs, mapping.ToDomainBudgetRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budget rows: %w", err)
	}
	return recs, nil
}
