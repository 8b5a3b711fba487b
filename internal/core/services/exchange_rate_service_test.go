package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/core/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, suite.mockCurrencyRepo)
}

func (suite *ExchangeRateServiceTestSuite) usdCurrency() *domain.Currency {
	return &domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"}
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_FirstInsert() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usdCurrency(), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("InsertRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.UpsertRate(ctx, dto.UpsertExchangeRateRequest{
		CurrencyCode: "usd",
		Rate:         decimal.RequireFromString("110.000000"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("USD", rate.CurrencyCode)
	suite.Equal(int64(1), rate.Version)
	suite.True(rate.Change.IsZero())
	suite.Equal(domain.TrendStable, rate.Trend)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_UpdateWritesHistory() {
	ctx := context.Background()
	existing := &domain.ExchangeRate{
		CurrencyCode: "USD",
		Rate:         decimal.RequireFromString("110"),
		Version:      3,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usdCurrency(), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(existing, nil).Once()

	var savedHistory domain.ExchangeRateHistory
	suite.mockRateRepo.
		On("UpdateRateCAS", ctx, mock.AnythingOfType("domain.ExchangeRate"), int64(3), mock.AnythingOfType("domain.ExchangeRateHistory")).
		Run(func(args mock.Arguments) {
			savedHistory = args.Get(3).(domain.ExchangeRateHistory)
		}).
		Return(nil).Once()

	rate, err := suite.service.UpsertRate(ctx, dto.UpsertExchangeRateRequest{
		CurrencyCode: "USD",
		Rate:         decimal.RequireFromString("115"),
		Version:      3,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(4), rate.Version)
	suite.True(rate.Change.Equal(decimal.RequireFromString("5")))
	suite.Equal(domain.TrendUp, rate.Trend)
	suite.True(savedHistory.PreviousRate.Equal(decimal.RequireFromString("110")))
	suite.True(savedHistory.Rate.Equal(decimal.RequireFromString("115")))
	suite.True(savedHistory.PercentChange.Equal(decimal.RequireFromString("4.55")), "percent change is rounded to two decimals")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_StaleVersionConflicts() {
	ctx := context.Background()
	existing := &domain.ExchangeRate{
		CurrencyCode: "USD",
		Rate:         decimal.RequireFromString("110"),
		Version:      5,
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usdCurrency(), nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(existing, nil).Once()

	_, err := suite.service.UpsertRate(ctx, dto.UpsertExchangeRateRequest{
		CurrencyCode: "USD",
		Rate:         decimal.RequireFromString("115"),
		Version:      4,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpdateRateCAS", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_PivotCurrencyRejected() {
	ctx := context.Background()

	_, err := suite.service.UpsertRate(ctx, dto.UpsertExchangeRateRequest{
		CurrencyCode: "BDT",
		Rate:         decimal.RequireFromString("2"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertRate_UnknownCurrencyRejected() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XYZ").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpsertRate(ctx, dto.UpsertExchangeRateRequest{
		CurrencyCode: "XYZ",
		Rate:         decimal.RequireFromString("1.5"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_ThroughPivot() {
	ctx := context.Background()
	usd := &domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("110")}
	eur := &domain.ExchangeRate{CurrencyCode: "EUR", Rate: decimal.RequireFromString("120")}

	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(usd, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "EUR").Return(eur, nil).Once()

	// 100 USD -> 11000 BDT -> 91.666667 EUR.
	result, err := suite.service.Convert(ctx, decimal.RequireFromString("100"), "usd", "eur")

	suite.Require().NoError(err)
	suite.True(result.Equal(decimal.RequireFromString("91.666667")), "got %s", result.String())
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_RoundTripStaysWithinACent() {
	ctx := context.Background()
	usd := &domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("110")}

	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(usd, nil).Twice()

	original := decimal.RequireFromString("100.30")

	inUSD, err := suite.service.Convert(ctx, original, "BDT", "USD")
	suite.Require().NoError(err)

	back, err := suite.service.Convert(ctx, inUSD, "USD", "BDT")
	suite.Require().NoError(err)

	drift := back.Sub(original).Abs()
	suite.True(drift.LessThanOrEqual(decimal.RequireFromString("0.01")),
		"round trip drifted by %s", drift.String())
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_ToPivot() {
	ctx := context.Background()
	usd := &domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("110.50")}

	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(usd, nil).Once()

	result, err := suite.service.Convert(ctx, decimal.RequireFromString("10"), "USD", "BDT")

	suite.Require().NoError(err)
	suite.True(result.Equal(decimal.RequireFromString("1105.00")))
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_SameCurrency() {
	ctx := context.Background()

	result, err := suite.service.Convert(ctx, decimal.RequireFromString("42.005"), "EUR", "EUR")

	suite.Require().NoError(err)
	suite.True(result.Equal(decimal.RequireFromString("42.005")))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_NonPositiveAmountRejected() {
	ctx := context.Background()

	_, err := suite.service.Convert(ctx, decimal.Zero, "USD", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
