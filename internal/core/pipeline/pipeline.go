package pipeline

import (
	"time"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// Result carries the records produced by one full pipeline run plus the
// per-stage counts reported by the sync endpoint.
type Result struct {
	EnrichedCount     int
	RevenueInput      int
	ManPowerInput     int
	CostInput         int
	CostYearlyCount   int
	UnclassifiedCount int

	Revenue      []domain.TrialBalanceRecord
	ManPower     []domain.TrialBalanceRecord
	CostMonthly  []domain.TrialBalanceRecord
	Unclassified []domain.TrialBalanceRecord
}

// Records returns all persistable records of the run in write order.
func (r Result) Records() []domain.TrialBalanceRecord {
	out := make([]domain.TrialBalanceRecord, 0, len(r.Revenue)+len(r.ManPower)+len(r.CostMonthly)+len(r.Unclassified))
	out = append(out, r.Revenue...)
	out = append(out, r.ManPower...)
	out = append(out, r.CostMonthly...)
	out = append(out, r.Unclassified...)
	return out
}

// Count returns the total number of persistable records.
func (r Result) Count() int {
	return len(r.Revenue) + len(r.ManPower) + len(r.CostMonthly) + len(r.Unclassified)
}

// Run executes the full transformation over one fetched ledger snapshot:
// enrich, apply the Real Estate revenue fixes (cc2 derivation before the
// account remap, which depends on the normalized cc2), then fan the rows out
// into the ManPower, Revenue and Cost stages.
//
// Rows that enrich to an unknown category are not dropped; they are carried
// through as plain monthly records so operators can spot classification gaps
// in the output data.
func Run(raw []domain.RawLedgerRow, syncedAt time.Time) Result {
	enriched := FilterAndEnrich(raw, syncedAt)

	fixed := make([]domain.EnrichedRow, len(enriched))
	for i, r := range enriched {
		fixed[i] = ApplyResidentialAccountFix(ApplyRevenueComponentFromCC2(r))
	}

	var salary, revenueRows, costRows, unknownRows []domain.EnrichedRow
	for _, r := range fixed {
		switch {
		case IsSalaryRow(r):
			salary = append(salary, r)
		case r.Category == domain.Revenue:
			revenueRows = append(revenueRows, r)
		case r.Category == domain.Cost:
			costRows = append(costRows, r)
		default:
			unknownRows = append(unknownRows, r)
		}
	}

	revenue := AggregateRevenueMonthly(revenueRows)
	// Non-Real-Estate revenue never stores a cc2; the key excludes it and a
	// stale value would only confuse the budget join.
	for i := range revenue {
		if revenue[i].Entity != domain.EntityRealEstate {
			revenue[i].CC2 = ""
		}
	}

	manPower := BuildManPowerSplit(salary)

	costYearly := BuildCostYearly(costRows)
	costMonthly := ExpandCostYearly(costYearly)

	unclassified := make([]domain.TrialBalanceRecord, 0, len(unknownRows))
	for _, r := range unknownRows {
		unclassified = append(unclassified, domain.TrialBalanceRecord{
			Kind:         domain.KindMonthly,
			Year:         r.Year,
			Month:        r.Month,
			TypeR:        r.TypeR,
			AccountNo:    r.AccountNo,
			AuxCode:      r.AuxCode,
			CC2:          r.CC2,
			CC3:          r.CC3,
			Entity:       r.Entity,
			Component:    r.Component,
			Category:     r.Category,
			BalanceFirst: r.BalanceFirst,
			SyncedAt:     r.SyncedAt,
		})
	}

	return Result{
		EnrichedCount:     len(enriched),
		RevenueInput:      len(revenueRows),
		ManPowerInput:     len(salary),
		CostInput:         len(costRows),
		CostYearlyCount:   len(costYearly),
		UnclassifiedCount: len(unclassified),
		Revenue:           revenue,
		ManPower:          manPower,
		CostMonthly:       costMonthly,
		Unclassified:      unclassified,
	}
}
