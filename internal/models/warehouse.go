package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseTrialBalance is the database representation of one normalized
// warehouse record.
type WarehouseTrialBalance struct {
	RecordKey    string          `db:"record_key"`
	Year         int             `db:"year"`
	Month        int             `db:"month"`
	TypeR        string          `db:"type_r"`
	AccountNo    string          `db:"accountno"`
	AuxCode      string          `db:"auxcode"`
	CC2          string          `db:"cc2"`
	CC3          string          `db:"cc3"`
	Entity       string          `db:"entity"`
	Component    string          `db:"component"`
	Category     string          `db:"category"`
	BalanceFirst decimal.Decimal `db:"balance_first"`
	SyncedAt     time.Time       `db:"synced_at"`
}
