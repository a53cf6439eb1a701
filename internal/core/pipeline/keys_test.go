package pipeline_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
)

func TestRecordKey_Variants(t *testing.T) {
	yearly := domain.TrialBalanceRecord{
		Kind: domain.KindYearlyCostView, Year: 2024, Month: 0,
		ViewKind: domain.YearlyCostViewKind, Category: domain.Cost,
		Entity: domain.EntityRealEstate, Component: "Kahramaa", AuxCode: "",
		TotalBalances: make([]decimal.Decimal, 12),
	}
	manpower := domain.TrialBalanceRecord{
		Kind: domain.KindManPower, Year: 2024, Month: 2,
		AccountNo: domain.ManPowerSumAccount, Entity: domain.EntityAssetServices,
		Component: domain.ManPowerComponent, AuxCode: "Security", Category: domain.Cost,
	}
	revenue := domain.TrialBalanceRecord{
		Kind: domain.KindMonthly, Year: 2024, Month: 2,
		AccountNo: "44131", CC2: "ignored", CC3: "C3", Category: domain.Revenue,
	}
	cost := domain.TrialBalanceRecord{
		Kind: domain.KindMonthly, Year: 2024, Month: 2,
		AccountNo: "55201", AuxCode: "GUARD-A", Category: domain.Cost,
	}

	assert.Equal(t, "2024|0|YEARLY_COST_VIEW|West Walk Real Estate|Kahramaa|", pipeline.RecordKey(yearly))
	assert.Equal(t, "2024|2|MP_SUM|Assets Services Company|ManPower|Security", pipeline.RecordKey(manpower))
	assert.Equal(t, "2024|2|44131|C3", pipeline.RecordKey(revenue))
	assert.Equal(t, "2024|2|55201|GUARD-A", pipeline.RecordKey(cost))
}

func TestRecordKey_RevenueCC2Excluded(t *testing.T) {
	a := domain.TrialBalanceRecord{Kind: domain.KindMonthly, Year: 2024, Month: 1, AccountNo: "44131", CC2: "North", CC3: "X", Category: domain.Revenue}
	b := a
	b.CC2 = "South"
	assert.Equal(t, pipeline.RecordKey(a), pipeline.RecordKey(b))
}

func TestComparisonKey_ExcludesYear(t *testing.T) {
	current := domain.TrialBalanceRecord{
		Year: 2024, Month: 3, AccountNo: "44131",
		Entity: domain.EntityRealEstate, Component: "Kiosks",
		CC3: "X", Category: domain.Revenue, TypeR: "P",
	}
	prior := current
	prior.Year = 2023

	assert.Equal(t, pipeline.ComparisonKey(current), pipeline.ComparisonKey(prior))
	assert.NotEqual(t, pipeline.BudgetKey(current), pipeline.BudgetKey(prior))
}

func TestBudgetKeysAlign(t *testing.T) {
	rec := domain.TrialBalanceRecord{
		Year: 2024, Month: 3, AccountNo: "44131",
		Entity: domain.EntityRealEstate, Component: "Kiosks",
		CC2: "", CC3: "X", AuxCode: "", Category: domain.Revenue, TypeR: "P",
	}
	budget := domain.BudgetRecord{
		Year: 2024, Month: 3, AccountNo: "44131",
		Entity: domain.EntityRealEstate, Component: "Kiosks",
		CC2: "", CC3: "X", AuxCode: "", Category: domain.Revenue, TypeR: "P",
	}

	assert.Equal(t, pipeline.BudgetKey(rec), pipeline.BudgetRecordKey(budget))
}
