package services_test

import (
	"context"
	"testing"
	"time"

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

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockPurchaseRepo *MockPurchaseRepository
	mockClientRepo   *MockClientRepository
	mockProductRepo  *MockProductRepository
	service          portssvc.PurchaseSvcFacade
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewPurchaseService(suite.mockPurchaseRepo, suite.mockClientRepo, suite.mockProductRepo)
}

func (suite *PurchaseServiceTestSuite) activeClientAndProduct() (*domain.Client, *domain.Product) {
	client := &domain.Client{
		ClientID:    uuid.NewString(),
		DisplayName: "Acme Traders",
		Status:      domain.ClientActive,
	}
	product := &domain.Product{
		ProductID:     uuid.NewString(),
		Name:          "Mail Hosting",
		Status:        domain.ProductActive,
		FXRateApplied: decimal.RequireFromString("110.50"),
	}
	return client, product
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_OneOff_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	client, product := suite.activeClientAndProduct()

	req := dto.CreatePurchaseRequest{
		ClientID:    client.ClientID,
		ProductID:   product.ProductID,
		Quantity:    2,
		TotalAmount: decimal.RequireFromString("1200.005"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockPurchaseRepo.On("SavePurchase", ctx, mock.AnythingOfType("domain.Purchase")).Return(nil).Once()

	purchase, subscription, err := suite.service.CreatePurchase(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.Nil(subscription)
	suite.NotEmpty(purchase.PurchaseID)
	suite.Regexp(`^PO-[0-9A-F]{8}$`, purchase.PONumber)
	suite.Equal(client.DisplayName, purchase.ClientName)
	suite.Equal(product.Name, purchase.ProductName)
	suite.Equal(domain.PurchaseActive, purchase.Status)
	suite.True(purchase.TotalAmount.Equal(decimal.RequireFromString("1200.01")), "total amount is rounded to two decimals")
	suite.True(purchase.FXRateApplied.Equal(product.FXRateApplied))
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_WithSubscription_DerivesTerm() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	client, product := suite.activeClientAndProduct()

	delivery := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePurchaseRequest{
		ClientID:           client.ClientID,
		ProductID:          product.ProductID,
		Quantity:           1,
		SubscriptionActive: true,
		SubscriptionMonths: 12,
		DeliveryDate:       &delivery,
		TotalAmount:        decimal.RequireFromString("5000.00"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	var savedSubscription domain.Subscription
	suite.mockPurchaseRepo.
		On("SavePurchaseWithSubscription", ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.Subscription")).
		Run(func(args mock.Arguments) {
			savedSubscription = args.Get(2).(domain.Subscription)
		}).
		Return(nil).Once()

	purchase, subscription, err := suite.service.CreatePurchase(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(purchase)
	suite.Require().NotNil(subscription)
	suite.Equal(purchase.PurchaseID, subscription.PurchaseID)
	suite.Equal(purchase.PONumber, subscription.PONumber)
	suite.Equal(delivery, subscription.StartDate)
	suite.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), subscription.EndDate)
	suite.Equal(12, subscription.TermMonths)
	suite.Equal(1, subscription.RecurringCount, "recurring count defaults to one")
	suite.Equal(subscription.SubscriptionID, savedSubscription.SubscriptionID)
	suite.mockPurchaseRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_EndOfMonthClamped() {
	ctx := context.Background()
	client, product := suite.activeClientAndProduct()

	// Jan 31 + 1 month lands on the last day of February, not March 3.
	delivery := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePurchaseRequest{
		ClientID:           client.ClientID,
		ProductID:          product.ProductID,
		Quantity:           1,
		SubscriptionActive: true,
		SubscriptionMonths: 1,
		DeliveryDate:       &delivery,
		TotalAmount:        decimal.RequireFromString("100.00"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()
	suite.mockPurchaseRepo.
		On("SavePurchaseWithSubscription", ctx, mock.AnythingOfType("domain.Purchase"), mock.AnythingOfType("domain.Subscription")).
		Return(nil).Once()

	_, subscription, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(subscription)
	suite.Equal(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), subscription.EndDate)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_SubscriptionNeedsMonths() {
	ctx := context.Background()
	req := dto.CreatePurchaseRequest{
		ClientID:           uuid.NewString(),
		ProductID:          uuid.NewString(),
		Quantity:           1,
		SubscriptionActive: true,
		SubscriptionMonths: 0,
		TotalAmount:        decimal.RequireFromString("100.00"),
	}

	_, _, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "FindClientByID", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_ClientNotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		ClientID:    clientID,
		ProductID:   uuid.NewString(),
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("100.00"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPurchaseRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_InactiveProductRejected() {
	ctx := context.Background()
	client, product := suite.activeClientAndProduct()
	product.Status = domain.ProductInactive

	req := dto.CreatePurchaseRequest{
		ClientID:    client.ClientID,
		ProductID:   product.ProductID,
		Quantity:    1,
		TotalAmount: decimal.RequireFromString("100.00"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockProductRepo.On("FindProductByID", ctx, product.ProductID).Return(product, nil).Once()

	_, _, err := suite.service.CreatePurchase(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_ConflictOnDependents() {
	ctx := context.Background()
	purchaseID := uuid.NewString()
	purchase := &domain.Purchase{PurchaseID: purchaseID}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(purchase, nil).Once()
	suite.mockPurchaseRepo.On("DeletePurchase", ctx, purchaseID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeletePurchase(ctx, purchaseID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func TestPurchaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
