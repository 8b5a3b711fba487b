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

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockVendorRepo  *MockVendorRepository
	mockRateRepo    *MockExchangeRateRepository
	service         portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewProductService(suite.mockProductRepo, suite.mockVendorRepo, suite.mockRateRepo)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DerivesBDTPrice() {
	ctx := context.Background()
	vendor := &domain.Vendor{VendorID: uuid.NewString(), Name: "CloudMail Inc"}
	usdRate := &domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("110")}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(usdRate, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, dto.CreateProductRequest{
		Name:                "Mail Hosting",
		VendorID:            vendor.VendorID,
		BasePrice:           decimal.RequireFromString("10"),
		BaseCurrencyCode:    "usd",
		ProfitMarginPercent: decimal.RequireFromString("20"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	// 10 * 1.20 * 110 = 1320 BDT.
	suite.True(product.BDTPrice.Equal(decimal.RequireFromString("1320.00")), "got %s", product.BDTPrice)
	suite.True(product.FXRateApplied.Equal(usdRate.Rate))
	suite.Equal("USD", product.BaseCurrencyCode)
	suite.Equal(domain.ProductActive, product.Status)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_BDTBasePriceSkipsRateLookup() {
	ctx := context.Background()
	vendor := &domain.Vendor{VendorID: uuid.NewString()}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, dto.CreateProductRequest{
		Name:             "Local Support",
		VendorID:         vendor.VendorID,
		BasePrice:        decimal.RequireFromString("500.00"),
		BaseCurrencyCode: "BDT",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(product.BDTPrice.Equal(decimal.RequireFromString("500.00")))
	suite.True(product.FXRateApplied.Equal(decimal.NewFromInt(1)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_MissingRateRejected() {
	ctx := context.Background()
	vendor := &domain.Vendor{VendorID: uuid.NewString()}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendor.VendorID).Return(vendor, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "JPY").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateProduct(ctx, dto.CreateProductRequest{
		Name:             "Backup Storage",
		VendorID:         vendor.VendorID,
		BasePrice:        decimal.RequireFromString("100"),
		BaseCurrencyCode: "JPY",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_RepricesOnMarginChange() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:           uuid.NewString(),
		Name:                "Mail Hosting",
		BasePrice:           decimal.RequireFromString("10"),
		BaseCurrencyCode:    "USD",
		ProfitMarginPercent: decimal.RequireFromString("20"),
		BDTPrice:            decimal.RequireFromString("1320.00"),
		FXRateApplied:       decimal.RequireFromString("110"),
		Status:              domain.ProductActive,
	}
	newRate := &domain.ExchangeRate{CurrencyCode: "USD", Rate: decimal.RequireFromString("120")}
	margin := decimal.RequireFromString("50")

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, "USD").Return(newRate, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{
		ProfitMarginPercent: &margin,
	}, uuid.NewString())

	suite.Require().NoError(err)
	// 10 * 1.50 * 120 = 1800 BDT at the current rate.
	suite.True(product.BDTPrice.Equal(decimal.RequireFromString("1800.00")), "got %s", product.BDTPrice)
	suite.True(product.FXRateApplied.Equal(newRate.Rate))
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_NameOnlyKeepsPrice() {
	ctx := context.Background()
	existing := &domain.Product{
		ProductID:     uuid.NewString(),
		Name:          "Mail Hosting",
		BDTPrice:      decimal.RequireFromString("1320.00"),
		FXRateApplied: decimal.RequireFromString("110"),
	}
	name := "Mail Hosting Pro"

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.UpdateProduct(ctx, existing.ProductID, dto.UpdateProductRequest{Name: &name}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(name, product.Name)
	suite.True(product.BDTPrice.Equal(decimal.RequireFromString("1320.00")))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeactivateProduct() {
	ctx := context.Background()
	existing := &domain.Product{ProductID: uuid.NewString(), Status: domain.ProductActive}

	suite.mockProductRepo.On("FindProductByID", ctx, existing.ProductID).Return(existing, nil).Once()
	suite.mockProductRepo.
		On("DeactivateProduct", ctx, existing.ProductID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateProduct(ctx, existing.ProductID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
