// Package pipeline implements the trial-balance transformation pipeline:
// enrichment, ManPower splitting, revenue reclassification and aggregation,
// cost yearly roll-up and expansion, and the natural keys used to persist
// and join the produced records.
//
// Every stage is a pure function over slices; a sync run wires them together
// sequentially via Run.
package pipeline

import (
	"strings"
	"time"

	"github.com/westwalk/performance_report_app/internal/core/domain"
)

// FilterAndEnrich keeps only posted rows (typeR "P") from the reporting
// period for accounts in the reporting set, flips the stored sign convention
// (source and report use opposite debit/credit conventions) and attaches
// classification metadata. Accounts missing from the classification table
// enrich to the "Unknown" sentinel on every dimension.
func FilterAndEnrich(raw []domain.RawLedgerRow, syncedAt time.Time) []domain.EnrichedRow {
	enriched := make([]domain.EnrichedRow, 0, len(raw))

	for _, r := range raw {
		if !strings.EqualFold(strings.TrimSpace(r.TypeR), domain.PostType) {
			continue
		}
		if r.Year < domain.ReportingFloorYear {
			continue
		}
		acc := strings.TrimSpace(r.AccountNo)
		if !domain.ReportingAccounts[acc] {
			continue
		}

		meta := domain.Classify(acc)
		enriched = append(enriched, domain.EnrichedRow{
			Year:         r.Year,
			Month:        r.Month,
			TypeR:        domain.PostType,
			AccountNo:    acc,
			AuxCode:      strings.TrimSpace(r.AuxCode),
			CC2:          strings.TrimSpace(r.CC2),
			CC3:          strings.TrimSpace(r.CC3),
			BalanceFirst: r.BalanceFirst.Neg(),
			Entity:       meta.Entity,
			Component:    meta.Component,
			Category:     meta.Category,
			SyncedAt:     syncedAt,
		})
	}

	return enriched
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}
