package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
	"github.com/westwalk/performance_report_app/internal/models"
)

// ToModelTrialBalance converts a domain TrialBalanceRecord to its database
// model, computing the natural record key and encoding the yearly slot array.
func ToModelTrialBalance(d domain.TrialBalanceRecord) (models.TrialBalance, error) {
	m := models.TrialBalance{
		RecordKey:    pipeline.RecordKey(d),
		RecordKind:   string(d.Kind),
		Year:         d.Year,
		Month:        d.Month,
		TypeR:        d.TypeR,
		AccountNo:    d.AccountNo,
		AuxCode:      d.AuxCode,
		CC2:          d.CC2,
		CC3:          d.CC3,
		Entity:       d.Entity,
		Component:    d.Component,
		Category:     string(d.Category),
		BalanceFirst: d.BalanceFirst,
		ViewKind:     d.ViewKind,
		TotalSum:     d.TotalSum,
		SyncedAt:     d.SyncedAt,
	}
	if len(d.TotalBalances) > 0 {
		raw, err := json.Marshal(d.TotalBalances)
		if err != nil {
			return models.TrialBalance{}, fmt.Errorf("failed to encode total balances: %w", err)
		}
		m.TotalBalances = raw
	}
	return m, nil
}

// ToDomainTrialBalance converts a database model back to its domain record.
func ToDomainTrialBalance(m models.TrialBalance) (domain.TrialBalanceRecord, error) {
	d := domain.TrialBalanceRecord{
		Kind:         domain.RecordKind(m.RecordKind),
		Year:         m.Year,
		Month:        m.Month,
		TypeR:        m.TypeR,
		AccountNo:    m.AccountNo,
		AuxCode:      m.AuxCode,
		CC2:          m.CC2,
		CC3:          m.CC3,
		Entity:       m.Entity,
		Component:    m.Component,
		Category:     domain.Category(m.Category),
		BalanceFirst: m.BalanceFirst,
		ViewKind:     m.ViewKind,
		TotalSum:     m.TotalSum,
		SyncedAt:     m.SyncedAt,
	}
	if len(m.TotalBalances) > 0 {
		var slots []decimal.Decimal
		if err := json.Unmarshal(m.TotalBalances, &slots); err != nil {
			return domain.TrialBalanceRecord{}, fmt.Errorf("failed to decode total balances for %s: %w", m.RecordKey, err)
		}
		d.TotalBalances = slots
	}
	return d, nil
}
