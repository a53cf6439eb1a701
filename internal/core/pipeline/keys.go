package pipeline

import (
	"strconv"
	"strings"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

const keySep = "|"

func itoa(n int) string { return strconv.Itoa(n) }

func joinKey(parts ...string) string { return strings.Join(parts, keySep) }

// RecordKey builds the kind-specific natural key under which a trial-balance
// record is upserted. Re-syncing identical upstream data therefore maps each
// record onto exactly one stored document.
//
//	yearly cost view: year, 0, viewKind, entity, component, auxcode
//	manpower:         year, month, MP_SUM, entity, component, auxcode
//	monthly revenue:  year, month, accountno, cc3
//	monthly cost:     year, month, accountno, auxcode
//
// cc2 never participates in the revenue key; rows differing only in cc2
// collapse onto the same document.
func RecordKey(r domain.TrialBalanceRecord) string {
	switch {
	case r.IsYearlyCostView():
		return joinKey(itoa(r.Year), "0", domain.YearlyCostViewKind, r.Entity, r.Component, r.AuxCode)
	case r.IsManPower():
		return joinKey(itoa(r.Year), itoa(r.Month), domain.ManPowerSumAccount, r.Entity, r.Component, r.AuxCode)
	case r.Category == domain.Revenue:
		return joinKey(itoa(r.Year), itoa(r.Month), r.AccountNo, r.CC3)
	default:
		return joinKey(itoa(r.Year), itoa(r.Month), r.AccountNo, r.AuxCode)
	}
}

// ComparisonKey is the year-less dimension tuple used to match a record
// against the same period of another year. Excluding the year lets a current
// row and its prior-year counterpart produce the same key.
func ComparisonKey(r domain.TrialBalanceRecord) string {
	return joinKey(
		itoa(r.Month),
		r.AccountNo,
		r.Entity,
		r.Component,
		r.CC2,
		r.CC3,
		r.AuxCode,
		string(r.Category),
		r.TypeR,
	)
}

// BudgetKey is the full natural key, year included, on which budgeted
// amounts join stored records.
func BudgetKey(r domain.TrialBalanceRecord) string {
	return joinKey(itoa(r.Year), ComparisonKey(r))
}

// BudgetRecordKey builds the same key shape from a budget row.
func BudgetRecordKey(b domain.BudgetRecord) string {
	return joinKey(
		itoa(b.Year),
		itoa(b.Month),
		b.AccountNo,
		b.Entity,
		b.Component,
		b.CC2,
		b.CC3,
		b.AuxCode,
		string(b.Category),
		b.TypeR,
	)
}
