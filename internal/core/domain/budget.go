package domain

import "github.com/shopspring/decimal"

// BudgetRecord is one budgeted amount row. The set is bulk-replaced per
// (entity, year) on each CSV upload: all prior rows for that pair are
// deleted, then the freshly parsed rows are inserted.
type BudgetRecord struct {
	AccountNo    string          `json:"accountno"`
	CC2          string          `json:"cc2"`
	CC3          string          `json:"cc3"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TypeR        string          `json:"typeR"`
	Category     Category        `json:"category"`
	AuxCode      string          `json:"auxcode"`
	BalanceFirst decimal.Decimal `json:"balanceFirst"` // budgeted amount
	Entity       string          `json:"entity"`
	Component    string          `json:"component"`
}
