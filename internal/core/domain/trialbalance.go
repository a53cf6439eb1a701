package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the top-level classification of a ledger account.
type Category string

const (
	Revenue Category = "Revenue"
	Cost    Category = "Cost"
	// UnknownCategory marks rows whose account is missing from the
	// classification table. Such rows still flow through the pipeline so
	// classification gaps show up in report output instead of vanishing.
	UnknownCategory Category = "Unknown"
)

// RecordKind tags the three variants stored in the unified trial-balance
// collection. The stored documents used to be told apart by ad hoc field
// combinations (month=0, accountno="MP_SUM"); the explicit tag makes upsert
// key selection and read-time expansion unambiguous.
type RecordKind string

const (
	KindMonthly        RecordKind = "MONTHLY"
	KindYearlyCostView RecordKind = "YEARLY_COST_VIEW"
	KindManPower       RecordKind = "MANPOWER"
)

const (
	// YearlyCostViewKind is the stored viewKind sentinel for yearly cost
	// documents. Together with month=0 it prevents collisions with real
	// monthly records. Part of the storage contract.
	YearlyCostViewKind = "YEARLY_COST_VIEW"

	// ManPowerSumAccount is the synthetic account number shared by every
	// ManPower-derived record.
	ManPowerSumAccount = "MP_SUM"

	// MergedEmptyAuxAccount is the accountno placeholder for merged
	// empty-auxcode yearly cost groups that contributed no account numbers.
	MergedEmptyAuxAccount = "MERGED_EMPTYAUX"

	// ManPowerComponent is the component label on all ManPower split records.
	ManPowerComponent = "ManPower"

	// MixedComponent marks an aggregated revenue record whose merged source
	// rows disagreed on component.
	MixedComponent = "Mixed"

	// PostType is the only typeR value the reporting pipeline ingests.
	PostType = "P"

	// ReportingFloorYear is the earliest ledger year the reports cover.
	ReportingFloorYear = 2023
)

// RawLedgerRow is one row of the Dolphin trial-balance response. It is
// ephemeral: rows are filtered and enriched, never persisted as-is.
type RawLedgerRow struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TypeR        string          `json:"typeR"`
	AccountNo    string          `json:"accountno"`
	AuxCode      string          `json:"auxcode"`
	CC2          string          `json:"cc2"`
	CC3          string          `json:"cc3"`
	BalanceFirst decimal.Decimal `json:"balanceFirst"`
}

// EnrichedRow is a RawLedgerRow after the enrichment stage: sign flipped,
// classification metadata attached. Transient, produced per sync run.
type EnrichedRow struct {
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

// TrialBalanceRecord is the canonical persisted shape of the unified
// trial-balance collection. Field names are part of the storage contract.
//
// Monthly and ManPower records carry a real month in [1,12] and a zero-value
// TotalBalances. Yearly-cost-view records carry month=0, ViewKind set, a
// 12-slot TotalBalances array indexed by month-1 and TotalSum equal to
// BalanceFirst.
type TrialBalanceRecord struct {
	Kind         RecordKind      `json:"recordKind"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	TypeR        string          `json:"typeR"`
	AccountNo    string          `json:"accountno"`
	AuxCode      string          `json:"auxcode"`
	CC2          string          `json:"cc2"`
	CC3          string          `json:"cc3"`
	Entity       string          `json:"entity"`
	Component    string          `json:"component"`
	Category     Category        `json:"category"`
	BalanceFirst decimal.Decimal `json:"balanceFirst"`

	// Yearly cost view only.
	ViewKind      string            `json:"viewKind,omitempty"`
	TotalBalances []decimal.Decimal `json:"totalBalances,omitempty"`
	TotalSum      decimal.Decimal   `json:"totalSum,omitempty"`

	SyncedAt time.Time `json:"syncedAt"`
}

// IsYearlyCostView reports whether the record is an unexpanded yearly cost
// document. The field checks (not just the Kind tag) are kept so records
// written before the explicit tag existed still expand at read time.
func (r TrialBalanceRecord) IsYearlyCostView() bool {
	if r.Kind == KindYearlyCostView {
		return true
	}
	return r.Month == 0 &&
		r.ViewKind == YearlyCostViewKind &&
		r.Category == Cost &&
		len(r.TotalBalances) == 12
}

// IsManPower reports whether the record was produced by the ManPower split.
func (r TrialBalanceRecord) IsManPower() bool {
	return r.Kind == KindManPower || r.AccountNo == ManPowerSumAccount
}
