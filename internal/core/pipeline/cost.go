package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

type costGroup struct {
	year      int
	entity    string
	component string
	accountNo string
	auxCode   string
	balances  [12]decimal.Decimal
	syncedAt  time.Time
}

type mergedGroup struct {
	year       int
	entity     string
	component  string
	balances   [12]decimal.Decimal
	accountNos map[string]bool
	syncedAt   time.Time
}

// BuildCostYearly rolls cost rows up into yearly-view records. Rows are
// first grouped by (year, entity, accountno, auxcode) into a 12-slot balance
// array indexed by month-1. Groups with a non-empty auxcode each become one
// record; groups with an empty auxcode are merged further by
// (year, entity, component), with the contributing account numbers recorded
// as a sorted comma-joined list (or MERGED_EMPTYAUX when empty).
//
// Slots are rounded per slot; totalSum is rounded once from the unrounded
// slot sum so per-addition rounding drift cannot compound.
func BuildCostYearly(rows []domain.EnrichedRow) []domain.TrialBalanceRecord {
	groups := make(map[string]*costGroup)
	var order []string

	for _, r := range rows {
		if r.Year == 0 || !validMonth(r.Month) {
			continue
		}
		key := joinKey(itoa(r.Year), r.Entity, r.AccountNo, r.AuxCode)
		g, ok := groups[key]
		if !ok {
			g = &costGroup{
				year:      r.Year,
				entity:    r.Entity,
				component: r.Component,
				accountNo: r.AccountNo,
				auxCode:   r.AuxCode,
				syncedAt:  r.SyncedAt,
			}
			groups[key] = g
			order = append(order, key)
		}
		if g.component == "" && r.Component != "" {
			g.component = r.Component
		}
		g.balances[r.Month-1] = g.balances[r.Month-1].Add(r.BalanceFirst)
	}

	sort.Strings(order)

	var out []domain.TrialBalanceRecord
	merged := make(map[string]*mergedGroup)
	var mergedOrder []string

	for _, key := range order {
		g := groups[key]

		if g.auxCode != "" {
			out = append(out, yearlyRecord(g.year, g.entity, g.component, g.accountNo, g.auxCode, g.balances, g.syncedAt))
			continue
		}

		mkey := joinKey(itoa(g.year), g.entity, g.component)
		m, ok := merged[mkey]
		if !ok {
			m = &mergedGroup{
				year:       g.year,
				entity:     g.entity,
				component:  g.component,
				accountNos: make(map[string]bool),
				syncedAt:   g.syncedAt,
			}
			merged[mkey] = m
			mergedOrder = append(mergedOrder, mkey)
		}
		for i := range m.balances {
			m.balances[i] = m.balances[i].Add(g.balances[i])
		}
		if g.accountNo != "" {
			m.accountNos[g.accountNo] = true
		}
	}

	sort.Strings(mergedOrder)
	for _, mkey := range mergedOrder {
		m := merged[mkey]
		accounts := make([]string, 0, len(m.accountNos))
		for acc := range m.accountNos {
			accounts = append(accounts, acc)
		}
		sort.Strings(accounts)

		accountNo := strings.Join(accounts, ", ")
		if accountNo == "" {
			accountNo = domain.MergedEmptyAuxAccount
		}
		out = append(out, yearlyRecord(m.year, m.entity, m.component, accountNo, "", m.balances, m.syncedAt))
	}

	return out
}

func yearlyRecord(year int, entity, component, accountNo, auxCode string, balances [12]decimal.Decimal, syncedAt time.Time) domain.TrialBalanceRecord {
	total := decimal.Zero
	slots := make([]decimal.Decimal, 12)
	for i, b := range balances {
		total = total.Add(b)
		slots[i] = b.Round(2)
	}
	totalSum := total.Round(2)

	return domain.TrialBalanceRecord{
		Kind:          domain.KindYearlyCostView,
		Year:          year,
		Month:         0,
		TypeR:         domain.PostType,
		AccountNo:     accountNo,
		AuxCode:       auxCode,
		Entity:        entity,
		Component:     component,
		Category:      domain.Cost,
		ViewKind:      domain.YearlyCostViewKind,
		TotalBalances: slots,
		TotalSum:      totalSum,
		BalanceFirst:  totalSum,
		SyncedAt:      syncedAt,
	}
}

// ExpandCostYearly expands every yearly-view record into 12 monthly cost
// records, one per slot. Records that are not yearly views pass through
// unchanged. The write path expands before persisting; the read path calls
// it again defensively in case older unexpanded documents remain stored.
func ExpandCostYearly(recs []domain.TrialBalanceRecord) []domain.TrialBalanceRecord {
	out := make([]domain.TrialBalanceRecord, 0, len(recs))
	for _, r := range recs {
		if !r.IsYearlyCostView() {
			out = append(out, r)
			continue
		}
		for i := 0; i < 12; i++ {
			out = append(out, domain.TrialBalanceRecord{
				Kind:         domain.KindMonthly,
				Year:         r.Year,
				Month:        i + 1,
				TypeR:        r.TypeR,
				AccountNo:    r.AccountNo,
				AuxCode:      r.AuxCode,
				CC2:          r.CC2,
				CC3:          r.CC3,
				Entity:       r.Entity,
				Component:    r.Component,
				Category:     domain.Cost,
				BalanceFirst: r.TotalBalances[i],
				SyncedAt:     r.SyncedAt,
			})
		}
	}
	return out
}
