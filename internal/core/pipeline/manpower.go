package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// IsSalaryRow reports whether an enriched row belongs to the pooled salary
// accounts. Detection is by account number only.
func IsSalaryRow(r domain.EnrichedRow) bool {
	return domain.SalaryAccounts[r.AccountNo]
}

type monthlyTotal struct {
	year, month int
	total       decimal.Decimal
	syncedAt    domain.EnrichedRow
}

// BuildManPowerSplit clubs salary rows into one total per (year, month) and
// redistributes each total across the owning entities by the fixed
// percentage table. The Assets Services share is further subdivided across
// five sub-departments, each emitted as its own record with the
// sub-department name as auxcode. All records share the synthetic MP_SUM
// account number and the ManPower component; amounts are rounded to 2
// decimals per record.
func BuildManPowerSplit(rows []domain.EnrichedRow) []domain.TrialBalanceRecord {
	totals := make(map[string]*monthlyTotal)
	var order []string

	for _, r := range rows {
		if r.Year == 0 || !validMonth(r.Month) {
			continue
		}
		key := joinKey(itoa(r.Year), itoa(r.Month))
		t, ok := totals[key]
		if !ok {
			totals[key] = &monthlyTotal{year: r.Year, month: r.Month, total: r.BalanceFirst, syncedAt: r}
			order = append(order, key)
			continue
		}
		t.total = t.total.Add(r.BalanceFirst)
	}

	sort.Strings(order)
	var out []domain.TrialBalanceRecord
	for _, key := range order {
		t := totals[key]
		for _, split := range domain.ManPowerSplit {
			entityShare := t.total.Mul(split.Percent)

			if split.Entity == domain.EntityAssetServices {
				for _, sub := range domain.AssetServicesSubSplit {
					out = append(out, manPowerRecord(t, split.Entity, sub.Name, entityShare.Mul(sub.Percent)))
				}
				continue
			}
			out = append(out, manPowerRecord(t, split.Entity, "", entityShare))
		}
	}
	return out
}

func manPowerRecord(t *monthlyTotal, entity, auxCode string, amount decimal.Decimal) domain.TrialBalanceRecord {
	return domain.TrialBalanceRecord{
		Kind:         domain.KindManPower,
		Year:         t.year,
		Month:        t.month,
		TypeR:        domain.PostType,
		AccountNo:    domain.ManPowerSumAccount,
		AuxCode:      auxCode,
		Entity:       entity,
		Component:    domain.ManPowerComponent,
		Category:     domain.Cost,
		BalanceFirst: amount.Round(2),
		SyncedAt:     t.syncedAt.SyncedAt,
	}
}
