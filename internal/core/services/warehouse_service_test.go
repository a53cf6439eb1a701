package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/westwalk/performance_report_app/internal/core/domain"
	portssvc "github.com/westwalk/performance_report_app/internal/core/ports/services"
	"github.com/westwalk/performance_report_app/internal/core/services"
)

// --- Mock WarehouseSource ---
type MockWarehouseSource struct {
	mock.Mock
}

func (m *MockWarehouseSource) FetchRows(ctx context.Context) ([]domain.WarehouseRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarehouseRow), args.Error(1)
}

// --- Mock WarehouseRepository ---
type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Replace(ctx context.Context, recs []domain.WarehouseRecord) (int, error) {
	args := m.Called(ctx, recs)
	return args.Int(0), args.Error(1)
}

func (m *MockWarehouseRepository) Find(ctx context.Context, f domain.WarehouseFilter) ([]domain.WarehouseRecord, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WarehouseRecord), args.Error(1)
}

type WarehouseServiceTestSuite struct {
	suite.Suite
	mockSource *MockWarehouseSource
	mockRepo   *MockWarehouseRepository
	service    portssvc.WarehouseSvcFacade
}

func (suite *WarehouseServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockWarehouseSource)
	suite.mockRepo = new(MockWarehouseRepository)
	suite.service = services.NewWarehouseService(suite.mockSource, suite.mockRepo)
}

func (suite *WarehouseServiceTestSuite) TestSync_NormalizesRows() {
	ctx := context.Background()
	rows := []domain.WarehouseRow{
		{
			Year: 2025, Month: 4, TypeR: "P",
			AccountNo:    "41205",
			BalanceFirst: decimal.RequireFromString("-500"),
			CompanyName:  "Warehouse Co",
			Level5:       "Storage Rent",
		},
		{
			Year: 2025, Month: 4, TypeR: "P",
			AccountNo:    "55340",
			BalanceFirst: decimal.RequireFromString("120"),
			CompanyName:  "Warehouse Co",
			Level5:       "Maintenance",
		},
	}

	suite.mockSource.On("FetchRows", ctx).Return(rows, nil).Once()
	suite.mockRepo.On("Replace", ctx, mock.MatchedBy(func(recs []domain.WarehouseRecord) bool {
		if len(recs) != 2 {
			return false
		}
		// sign flipped, category from account prefix
		return recs[0].BalanceFirst.Equal(decimal.RequireFromString("500")) &&
			recs[0].Category == domain.Revenue &&
			recs[1].Category == domain.Cost &&
			recs[0].Entity == "Warehouse Co"
	})).Return(2, nil).Once()

	saved, err := suite.service.Sync(ctx)

	suite.Require().NoError(err)
	suite.Equal(2, saved)
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestSync_FetchErrorDoesNotPersist() {
	ctx := context.Background()
	suite.mockSource.On("FetchRows", ctx).Return(nil, errors.New("mssql unreachable")).Once()

	_, err := suite.service.Sync(ctx)

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Replace", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestList_PassesFilterThrough() {
	ctx := context.Background()
	f := domain.WarehouseFilter{Year: 2025, Month: 4}
	expected := []domain.WarehouseRecord{{Year: 2025, Month: 4, AccountNo: "41205"}}

	suite.mockRepo.On("Find", ctx, f).Return(expected, nil).Once()

	recs, err := suite.service.List(ctx, f)

	suite.Require().NoError(err)
	suite.Equal(expected, recs)
}

func TestWarehouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseServiceTestSuite))
}
