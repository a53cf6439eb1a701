package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseRow is one row from the legacy SQL warehouse's cost-center
// analysis view, before normalization.
type WarehouseRow struct {
	Year         int
	Month        int
	TypeR        string
	AccountNo    string
	AuxCode      string
	CC2          string
	CC3          string
	BalanceFirst decimal.Decimal
	CompanyName  string
	Level5       string
}

// WarehouseRecord is the normalized, persisted shape of a warehouse row.
// Category is derived from the account-number prefix and the sign convention
// is flipped to match the reporting side.
type WarehouseRecord struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TypeR        string          `json:"typeR"`
	AccountNo    string          `json:"accountno"`
	AuxCode      string          `json:"auxcode"`
	CC2          string          `json:"cc2"`
	CC3          string          `json:"cc3"`
	BalanceFirst decimal.Decimal `json:"balanceFirst"`
	Entity       string          `json:"entity"`
	Component    string          `json:"component"`
	Category     Category        `json:"category"`
	SyncedAt     time.Time       `json:"syncedAt"`
}

// NormalizeWarehouseRow converts a raw warehouse row into its persisted
// shape: sign flip, entity from the company name, component from the level-5
// label, category from the account prefix (4xxxx revenue, 5xxxx/6xxxx cost).
func NormalizeWarehouseRow(r WarehouseRow, syncedAt time.Time) WarehouseRecord {
	category := Category("Other")
	switch {
	case strings.HasPrefix(r.AccountNo, "4"):
		category = Revenue
	case strings.HasPrefix(r.AccountNo, "5"), strings.HasPrefix(r.AccountNo, "6"):
		category = Cost
	}

	return WarehouseRecord{
		Year:         r.Year,
		Month:        r.Month,
		TypeR:        r.TypeR,
		AccountNo:    r.AccountNo,
		AuxCode:      r.AuxCode,
		CC2:          r.CC2,
		CC3:          r.CC3,
		BalanceFirst: r.BalanceFirst.Neg(),
		Entity:       r.CompanyName,
		Component:    r.Level5,
		Category:     category,
		SyncedAt:     syncedAt,
	}
}
