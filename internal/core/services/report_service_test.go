package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/core/services"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ReplaceForEntityYear(ctx context.Context, entity string, year int, recs []domain.BudgetRecord) (int, error) {
	args := m.Called(ctx, entity, year, recs)
	return args.Int(0), args.Error(1)
}

func (m *MockBudgetRepository) Find(ctx context.Context, f domain.BudgetFilter) ([]domain.BudgetRecord, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetRecord), args.Error(1)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockTBRepo     *MockTrialBalanceRepository
	mockBudgetRepo *MockBudgetRepository
	service        portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockTBRepo = new(MockTrialBalanceRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewReportService(suite.mockTBRepo, suite.mockBudgetRepo)
}

func monthlyRecord(year, month int, account string, bal string) domain.TrialBalanceRecord {
	return domain.TrialBalanceRecord{
		Kind:         domain.KindMonthly,
		Year:         year,
		Month:        month,
		TypeR:        "P",
		AccountNo:    account,
		Entity:       domain.EntityRealEstate,
		Component:    "Residential",
		Category:     domain.Revenue,
		BalanceFirst: decimal.RequireFromString(bal),
		SyncedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func yearlyCostRecord(year int, account, aux string) domain.TrialBalanceRecord {
	slots := make([]decimal.Decimal, 12)
	total := decimal.Zero
	for i := range slots {
		slots[i] = decimal.NewFromInt(int64(i + 1))
		total = total.Add(slots[i])
	}
	return domain.TrialBalanceRecord{
		Kind:          domain.KindYearlyCostView,
		Year:          year,
		Month:         0,
		TypeR:         "P",
		AccountNo:     account,
		AuxCode:       aux,
		Entity:        domain.EntityRealEstate,
		Component:     "Professional & Legal",
		Category:      domain.Cost,
		BalanceFirst:  total,
		ViewKind:      domain.YearlyCostViewKind,
		TotalBalances: slots,
		TotalSum:      total,
	}
}

func (suite *ReportServiceTestSuite) TestQuery_ExpandsYearlyCostViews() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{Entity: domain.EntityRealEstate}

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{yearlyCostRecord(2025, "64102", "A9")}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f})

	suite.Require().NoError(err)
	suite.Equal(12, res.Total)
	suite.Len(res.Rows, 12)
	// default sort keeps months ascending; slot i carries balance i+1
	suite.Equal(1, res.Rows[0].Month)
	suite.True(res.Rows[4].BalanceFirst.Equal(decimal.NewFromInt(5)))
}

func (suite *ReportServiceTestSuite) TestQuery_MonthFilterAfterExpansion() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{yearlyCostRecord(2025, "64102", "")}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, Month: 7})

	suite.Require().NoError(err)
	suite.Require().Len(res.Rows, 1)
	suite.Equal(7, res.Rows[0].Month)
	suite.True(res.Rows[0].BalanceFirst.Equal(decimal.NewFromInt(7)))
}

func (suite *ReportServiceTestSuite) TestQuery_AttachesBudgetedAmount() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}
	rec := monthlyRecord(2025, 3, "41111", "900")

	suite.mockTBRepo.On("Find", ctx, f).Return([]domain.TrialBalanceRecord{rec}, nil).Once()
	// two sheet rows on the same key sum into one budgeted amount
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{
		{
			AccountNo:    "41111",
			Month:        3,
			Year:         2025,
			TypeR:        "P",
			Category:     domain.Revenue,
			BalanceFirst: decimal.RequireFromString("600"),
			Entity:       domain.EntityRealEstate,
			Component:    "Residential",
		},
		{
			AccountNo:    "41111",
			Month:        3,
			Year:         2025,
			TypeR:        "P",
			Category:     domain.Revenue,
			BalanceFirst: decimal.RequireFromString("400"),
			Entity:       domain.EntityRealEstate,
			Component:    "Residential",
		},
	}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f})

	suite.Require().NoError(err)
	suite.Require().Len(res.Rows, 1)
	suite.True(res.Rows[0].BudgetedAmount.Equal(decimal.RequireFromString("1000")))
}

func (suite *ReportServiceTestSuite) TestQuery_BudgetKeyMismatchLeavesZero() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}
	rec := monthlyRecord(2025, 3, "41111", "900")

	suite.mockTBRepo.On("Find", ctx, f).Return([]domain.TrialBalanceRecord{rec}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{
		{AccountNo: "41111", Month: 4, Year: 2025, TypeR: "P", Category: domain.Revenue,
			BalanceFirst: decimal.RequireFromString("1000"), Entity: domain.EntityRealEstate, Component: "Residential"},
	}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f})

	suite.Require().NoError(err)
	suite.True(res.Rows[0].BudgetedAmount.IsZero())
}

func (suite *ReportServiceTestSuite) TestQuery_PriorYearBalanceWithYearFilter() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{Year: 2025}
	prevFilter := f
	prevFilter.Year = 2024

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2025, 3, "41111", "900")}, nil).Once()
	suite.mockTBRepo.On("Find", ctx, prevFilter).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2024, 3, "41111", "750")}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f})

	suite.Require().NoError(err)
	suite.Require().Len(res.Rows, 1)
	suite.True(res.Rows[0].PreviousYearMonthBalance.Equal(decimal.RequireFromString("750")))

	suite.mockTBRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestQuery_PriorYearSurvivesMonthFilter() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{Year: 2025}
	prevFilter := f
	prevFilter.Year = 2024

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2025, 1, "41111", "900")}, nil).Once()
	suite.mockTBRepo.On("Find", ctx, prevFilter).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2024, 1, "41111", "600")}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, Month: 1})

	suite.Require().NoError(err)
	suite.Require().Len(res.Rows, 1)
	suite.True(res.Rows[0].PreviousYearMonthBalance.Equal(decimal.RequireFromString("600")))
}

func (suite *ReportServiceTestSuite) TestQuery_DefaultSortAndPagination() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}
	stored := []domain.TrialBalanceRecord{
		monthlyRecord(2024, 5, "44131", "1"),
		monthlyRecord(2025, 2, "41111", "2"),
		monthlyRecord(2025, 1, "44131", "3"),
		monthlyRecord(2025, 1, "41111", "4"),
	}

	suite.mockTBRepo.On("Find", ctx, f).Return(stored, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, Page: 1, Limit: 3})

	suite.Require().NoError(err)
	suite.Equal(4, res.Total)
	suite.Require().Len(res.Rows, 3)
	// year desc, then month asc, then accountno asc
	suite.Equal(2025, res.Rows[0].Year)
	suite.Equal(1, res.Rows[0].Month)
	suite.Equal("41111", res.Rows[0].AccountNo)
	suite.Equal("44131", res.Rows[1].AccountNo)
	suite.Equal(2, res.Rows[2].Month)
}

func (suite *ReportServiceTestSuite) TestQuery_ExplicitSortDescending() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}
	stored := []domain.TrialBalanceRecord{
		monthlyRecord(2025, 1, "41111", "10"),
		monthlyRecord(2025, 2, "41111", "30"),
		monthlyRecord(2025, 3, "41111", "20"),
	}

	suite.mockTBRepo.On("Find", ctx, f).Return(stored, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, SortBy: "balanceFirst", SortOrder: "desc"})

	suite.Require().NoError(err)
	suite.True(res.Rows[0].BalanceFirst.Equal(decimal.NewFromInt(30)))
	suite.True(res.Rows[2].BalanceFirst.Equal(decimal.NewFromInt(10)))
}

func (suite *ReportServiceTestSuite) TestQuery_ClampsPageAndLimit() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2025, 1, "41111", "1")}, nil).Twice()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Twice()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, Page: 0, Limit: 6000})

	suite.Require().NoError(err)
	suite.Equal(1, res.Page)
	suite.Equal(5000, res.Limit)
	suite.Len(res.Rows, 1)

	res, err = suite.service.Query(ctx, domain.ReportQuery{Filter: f, Page: -3, Limit: -1})

	suite.Require().NoError(err)
	suite.Equal(1, res.Page)
	suite.Equal(500, res.Limit)
}

func (suite *ReportServiceTestSuite) TestQuery_InvalidMonthRejected() {
	_, err := suite.service.Query(context.Background(), domain.ReportQuery{Month: 13})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestQuery_PageBeyondEndIsEmpty() {
	ctx := context.Background()
	f := domain.TrialBalanceFilter{}

	suite.mockTBRepo.On("Find", ctx, f).
		Return([]domain.TrialBalanceRecord{monthlyRecord(2025, 1, "41111", "1")}, nil).Once()
	suite.mockBudgetRepo.On("Find", ctx, mock.Anything).Return([]domain.BudgetRecord{}, nil).Once()

	res, err := suite.service.Query(ctx, domain.ReportQuery{Filter: f, Page: 9, Limit: 10})

	suite.Require().NoError(err)
	suite.Equal(1, res.Total)
	suite.Empty(res.Rows)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
