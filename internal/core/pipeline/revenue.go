package pipeline

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// ApplyRevenueComponentFromCC2 derives the component of a West Walk Real
// Estate revenue row from its secondary cost-center text: any cc2 containing
// "residential" or "commercial" (case-insensitive) forces the matching
// component and normalizes cc2 to the bare literal. Other rows pass through
// unchanged.
func ApplyRevenueComponentFromCC2(r domain.EnrichedRow) domain.EnrichedRow {
	if r.Entity != domain.EntityRealEstate || r.Category != domain.Revenue {
		return r
	}

	cc2 := strings.ToLower(strings.TrimSpace(r.CC2))
	switch {
	case strings.Contains(cc2, "residential"):
		r.Component = domain.ResidentialComponent
		r.CC2 = domain.ResidentialComponent
	case strings.Contains(cc2, "commercial"):
		r.Component = domain.CommercialComponent
		r.CC2 = domain.CommercialComponent
	}
	return r
}

// ApplyResidentialAccountFix corrects a known misclassification at the
// source: Real Estate revenue booked on account 41112 against a residential
// cost center actually belongs on 41111. Must run after
// ApplyRevenueComponentFromCC2 since it matches on the normalized cc2 (it
// also accepts the raw "Residential Rental" form).
func ApplyResidentialAccountFix(r domain.EnrichedRow) domain.EnrichedRow {
	if r.Entity != domain.EntityRealEstate || r.Category != domain.Revenue {
		return r
	}
	if r.AccountNo == "41112" && strings.Contains(strings.ToLower(r.CC2), "residential") {
		r.AccountNo = "41111"
		r.Component = domain.ResidentialComponent
	}
	return r
}

type revenueGroup struct {
	first     domain.EnrichedRow
	component string
	sum       decimal.Decimal
}

// AggregateRevenueMonthly merges revenue rows of all entities by
// (year, month, accountno, cc3). cc2 is deliberately excluded from the
// grouping key: rows differing only in cc2 collapse into one record. When
// merged rows disagree on component the result is marked "Mixed" instead of
// silently picking one. Amounts are rounded to 2 decimals at the end.
func AggregateRevenueMonthly(rows []domain.EnrichedRow) []domain.TrialBalanceRecord {
	groups := make(map[string]*revenueGroup)
	var order []string

	for _, r := range rows {
		if r.Year == 0 || !validMonth(r.Month) {
			continue
		}
		key := joinKey(itoa(r.Year), itoa(r.Month), r.AccountNo, r.CC3)
		g, ok := groups[key]
		if !ok {
			groups[key] = &revenueGroup{first: r, component: r.Component, sum: r.BalanceFirst}
			order = append(order, key)
			continue
		}
		g.sum = g.sum.Add(r.BalanceFirst)
		if g.component != r.Component {
			g.component = domain.MixedComponent
		}
	}

	sort.Strings(order)
	out := make([]domain.TrialBalanceRecord, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out = append(out, domain.TrialBalanceRecord{
			Kind:         domain.KindMonthly,
			Year:         g.first.Year,
			Month:        g.first.Month,
			TypeR:        g.first.TypeR,
			AccountNo:    g.first.AccountNo,
			AuxCode:      g.first.AuxCode,
			CC2:          g.first.CC2,
			CC3:          g.first.CC3,
			Entity:       g.first.Entity,
			Component:    g.component,
			Category:     domain.Revenue,
			BalanceFirst: g.sum.Round(2),
			SyncedAt:     g.first.SyncedAt,
		})
	}
	return out
}
