package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalance is the database representation of one trial-balance record.
// TotalBalances is the raw jsonb payload of the yearly slot array; empty for
// monthly and manpower rows.
type TrialBalance struct {
	RecordKey     string          `db:"record_key"`
	RecordKind    string          `db:"record_kind"`
	Year          int             `db:"year"`
	Month         int             `db:"month"`
	TypeR         string          `db:"type_r"`
	AccountNo     string          `db:"accountno"`
	AuxCode       string          `db:"auxcode"`
	CC2           string          `db:"cc2"`
	CC3           string          `db:"cc3"`
	Entity        string          `db:"entity"`
	Component     string          `db:"component"`
	Category      string          `db:"category"`
	BalanceFirst  decimal.Decimal `db:"balance_first"`
	ViewKind      string          `db:"view_kind"`
	TotalBalances []byte          `db:"total_balances"`
	TotalSum      decimal.Decimal `db:"total_sum"`
	SyncedAt      time.Time       `db:"synced_at"`
}
