package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/westwalk/performance_report_app/internal/apperrors"
	"github.com/westwalk/performance_report_app/internal/core/domain"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/core/services"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	service  portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
}

const budgetCSV = `accountno,cc3,month,year,TypeR,accountType,auxcode,balanceFirst,cc2,company,component
41111,T-01,1,2025,P,Revenue,,1500.50,BLDG A,West Walk Real Estate,01 - Residential
64102,,2,2025,P,Cost,AX1,-200,,West Walk Real Estate,02 - Professional & Legal
`

func (suite *BudgetServiceTestSuite) TestUploadCSV_Success() {
	ctx := context.Background()

	suite.mockRepo.On("ReplaceForEntityYear", ctx, domain.EntityRealEstate, 2025,
		mock.MatchedBy(func(recs []domain.BudgetRecord) bool {
			if len(recs) != 2 {
				return false
			}
			r := recs[0]
			return r.AccountNo == "41111" &&
				r.Month == 1 &&
				r.Year == 2025 &&
				r.Category == domain.Revenue &&
				r.Component == "Residential" && // numeric prefix stripped
				r.CC2 == "BLDG A" &&
				r.BalanceFirst.Equal(decimal.RequireFromString("1500.50"))
		})).Return(2, nil).Once()

	saved, err := suite.service.UploadCSV(ctx, domain.EntityRealEstate, 2025, []byte(budgetCSV))

	suite.Require().NoError(err)
	suite.Equal(2, saved)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestUploadCSV_ColumnOrderIrrelevant() {
	ctx := context.Background()
	csvData := "month,balanceFirst,accountno,component\n6,42,44131,03 - Kiosks\n"

	suite.mockRepo.On("ReplaceForEntityYear", ctx, domain.EntityRealEstate, 2025,
		mock.MatchedBy(func(recs []domain.BudgetRecord) bool {
			return len(recs) == 1 &&
				recs[0].AccountNo == "44131" &&
				recs[0].Month == 6 &&
				recs[0].Component == "Kiosks" &&
				recs[0].TypeR == domain.PostType // defaulted
		})).Return(1, nil).Once()

	_, err := suite.service.UploadCSV(ctx, domain.EntityRealEstate, 2025, []byte(csvData))
	suite.Require().NoError(err)
}

func (suite *BudgetServiceTestSuite) TestUploadCSV_ValidationFailures() {
	ctx := context.Background()
	cases := []struct {
		name    string
		entity  string
		year    int
		csvData string
	}{
		{"empty entity", "", 2025, budgetCSV},
		{"year below floor", domain.EntityRealEstate, 2022, budgetCSV},
		{"missing accountno column", domain.EntityRealEstate, 2025, "month,balanceFirst\n1,5\n"},
		{"bad month", domain.EntityRealEstate, 2025, "accountno,month,balanceFirst\n41111,13,5\n"},
		{"bad amount", domain.EntityRealEstate, 2025, "accountno,month,balanceFirst\n41111,1,abc\n"},
		{"year mismatch", domain.EntityRealEstate, 2025, "accountno,month,year,balanceFirst\n41111,1,2024,5\n"},
		{"company mismatch", domain.EntityRealEstate, 2025, "accountno,month,company,balanceFirst\n41111,1,Other Co,5\n"},
		{"no data rows", domain.EntityRealEstate, 2025, "accountno,month,balanceFirst\n"},
	}

	for _, tc := range cases {
		_, err := suite.service.UploadCSV(ctx, tc.entity, tc.year, []byte(tc.csvData))
		suite.Require().ErrorIs(err, apperrors.ErrValidation, tc.name)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceForEntityYear", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestList_PassesFilterThrough() {
	ctx := context.Background()
	f := domain.BudgetFilter{Entity: domain.EntityRealEstate, Year: 2025, Month: 3}
	expected := []domain.BudgetRecord{{AccountNo: "41111", Year: 2025, Month: 3}}

	suite.mockRepo.On("Find", ctx, f).Return(expected, nil).Once()

	recs, err := suite.service.List(ctx, f)

	suite.Require().NoError(err)
	suite.Equal(expected, recs)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
