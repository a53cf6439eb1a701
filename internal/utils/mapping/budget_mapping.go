package mapping

import (
	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
	"github.com/westwalk/performance_report_app/internal/models"
)

// ToModelBudgetedAmount converts a domain BudgetRecord to its database model.
func ToModelBudgetedAmount(d domain.BudgetRecord) models.BudgetedAmount {
	return models.BudgetedAmount{
		RecordKey:    pipeline.BudgetRecordKey(d),
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
	}
}

// ToDomainBudgetRecord converts a database model back to its domain record.
func ToDomainBudgetRecord(m models.BudgetedAmount) domain.BudgetRecord {
	return domain.BudgetRecord{
		AccountNo:    m.AccountNo,
		CC2:          m.CC2,
		CC3:          m.CC3,
		Month:        m.Month,
		Year:         m.Year,
		TypeR:        m.TypeR,
		Category:     domain.Category(m.Category),
		AuxCode:      m.AuxCode,
		BalanceFirst: m.BalanceFirst,
		Entity:       m.Entity,
		Component:    m.Component,
	}
}
