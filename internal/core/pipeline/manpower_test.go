package pipeline_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	"github.com/westwalk/performance_report_app/internal/core/pipeline"
)

func salaryRow(year, month int, accountNo, balance string) domain.EnrichedRow {
	meta := domain.Classify(accountNo)
	return domain.EnrichedRow{
		Year:         year,
		Month:        month,
		TypeR:        "P",
		AccountNo:    accountNo,
		BalanceFirst: decimal.RequireFromString(balance),
		Entity:       meta.Entity,
		Component:    meta.Component,
		Category:     meta.Category,
		SyncedAt:     time.Now(),
	}
}

func TestBuildManPowerSplit_Conservation(t *testing.T) {
	// Input total of 10,000 for (2024, 1) with the fixed percentage table
	// {RE: 0.22, ASC: 0.6851, ADV: 0.0949}.
	rows := []domain.EnrichedRow{
		salaryRow(2024, 1, "61101", "6000"),
		salaryRow(2024, 1, "64105", "4000"),
	}

	out := pipeline.BuildManPowerSplit(rows)

	// Two entities emit one record each, Assets Services emits five sub-rows.
	require.Len(t, out, 7)

	total := decimal.Zero
	subTotal := decimal.Zero
	subRows := 0
	for _, r := range out {
		assert.Equal(t, domain.ManPowerSumAccount, r.AccountNo)
		assert.Equal(t, domain.ManPowerComponent, r.Component)
		assert.Equal(t, domain.Cost, r.Category)
		assert.Equal(t, domain.KindManPower, r.Kind)

		total = total.Add(r.BalanceFirst)
		if r.Entity == domain.EntityAssetServices {
			subRows++
			subTotal = subTotal.Add(r.BalanceFirst)
			assert.NotEmpty(t, r.AuxCode, "sub-split rows carry the split name as auxcode")
		} else {
			assert.Empty(t, r.AuxCode)
		}
	}

	assert.Equal(t, 5, subRows)

	// Per-record rounding allows up to a cent of drift per record.
	tolerance := decimal.RequireFromString("0.07")
	assert.True(t, total.Sub(decimal.NewFromInt(10000)).Abs().LessThanOrEqual(tolerance),
		"split total %s drifted more than %s from input", total, tolerance)
	assert.True(t, subTotal.Sub(decimal.RequireFromString("6851")).Abs().LessThanOrEqual(tolerance),
		"sub-split total %s drifted more than %s from 6851", subTotal, tolerance)
}

func TestBuildManPowerSplit_EntityShares(t *testing.T) {
	rows := []domain.EnrichedRow{salaryRow(2024, 2, "61101", "10000")}

	out := pipeline.BuildManPowerSplit(rows)
	require.Len(t, out, 7)

	byEntity := map[string]decimal.Decimal{}
	for _, r := range out {
		byEntity[r.Entity] = byEntity[r.Entity].Add(r.BalanceFirst)
	}

	assert.True(t, byEntity[domain.EntityRealEstate].Equal(decimal.RequireFromString("2200")))
	assert.True(t, byEntity[domain.EntityAdvertisement].Equal(decimal.RequireFromString("949")))
}

func TestBuildManPowerSplit_GroupsByYearMonth(t *testing.T) {
	rows := []domain.EnrichedRow{
		salaryRow(2024, 1, "61101", "1000"),
		salaryRow(2024, 2, "61101", "1000"),
		salaryRow(2023, 1, "61101", "1000"),
	}

	out := pipeline.BuildManPowerSplit(rows)
	assert.Len(t, out, 21) // 7 records per (year, month)
}

func TestBuildManPowerSplit_NegativeMonthDropped(t *testing.T) {
	row := salaryRow(2024, 1, "61101", "1000")
	row.Month = 0
	assert.Empty(t, pipeline.BuildManPowerSplit([]domain.EnrichedRow{row}))
}

func TestIsSalaryRow(t *testing.T) {
	assert.True(t, pipeline.IsSalaryRow(salaryRow(2024, 1, "64121", "1")))
	assert.False(t, pipeline.IsSalaryRow(revenueRow("41111", "", "", "1")))
	assert.False(t, pipeline.IsSalaryRow(salaryRow(2024, 1, "64114", "1"))) // cost account, not salary
}
