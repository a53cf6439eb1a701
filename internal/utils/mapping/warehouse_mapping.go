package mapping

import (
	"strconv"
	"strings"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/models"
)

// WarehouseRecordKey builds the natural key of a warehouse record:
// year, month, accountno, cc3.
func WarehouseRecordKey(d domain.WarehouseRecord) string {
	return strings.Join([]string{
		strconv.Itoa(d.Year),
		strconv.Itoa(d.Month),
		d.AccountNo,
		d.CC3,
	}, "|")
}

// ToModelWarehouseTrialBalance converts a domain WarehouseRecord to its
// database model.
func ToModelWarehouseTrialBalance(d domain.WarehouseRecord) models.WarehouseTrialBalance {
	return models.WarehouseTrialBalance{
		RecordKey:    WarehouseRecordKey(d),
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
		SyncedAt:     d.SyncedAt,
	}
}

// ToDomainWarehouseRecord converts a database model back to its domain
// record.
func ToDomainWarehouseRecord(m models.WarehouseTrialBalance) domain.WarehouseRecord {
	return domain.WarehouseRecord{
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
		SyncedAt:     m.SyncedAt,
	}
}
