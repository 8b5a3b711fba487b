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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo      *MockInvoiceRepository
	mockPurchaseRepo     *MockPurchaseRepository
	mockClientRepo       *MockClientRepository
	mockBillingRepo      *MockBillingRepository
	mockSubscriptionRepo *MockSubscriptionRepository
	service              portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.mockSubscriptionRepo = new(MockSubscriptionRepository)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockPurchaseRepo,
		suite.mockClientRepo,
		suite.mockBillingRepo,
		suite.mockSubscriptionRepo,
	)
}

func (suite *InvoiceServiceTestSuite) purchaseAndClient() (*domain.Purchase, *domain.Client) {
	client := &domain.Client{
		ClientID:    uuid.NewString(),
		DisplayName: "Acme Traders",
		Email:       "billing@acme.example",
		Status:      domain.ClientActive,
	}
	purchase := &domain.Purchase{
		PurchaseID:  uuid.NewString(),
		PONumber:    "PO-AB12CD34",
		ClientID:    client.ClientID,
		ClientName:  client.DisplayName,
		ProductName: "Mail Hosting",
		Quantity:    4,
		TotalAmount: decimal.RequireFromString("1000.00"),
	}
	return purchase, client
}

func (suite *InvoiceServiceTestSuite) TestGenerate_OneOffPurchase() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockBillingRepo.On("FindBillingByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubscriptionRepo.On("FindSubscriptionByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{PurchaseID: purchase.PurchaseID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Regexp(`^INV-[0-9A-F]{8}$`, invoice.InvoiceNumber)
	suite.Equal(client.Email, invoice.ClientEmail)
	suite.Empty(invoice.BillingID)
	suite.Empty(invoice.SubscriptionID)
	suite.Require().Len(invoice.Items, 1)
	suite.Equal(purchase.ProductName, invoice.Items[0].Description)
	suite.True(invoice.Items[0].UnitPrice.Equal(decimal.RequireFromString("250.00")))
	suite.True(invoice.SubTotal.Equal(decimal.RequireFromString("1000.00")))
	suite.True(invoice.TotalAmount.Equal(decimal.RequireFromString("1000.00")))
	suite.True(invoice.PaidAmount.IsZero())
	suite.True(invoice.BalanceAmount.Equal(decimal.RequireFromString("1000.00")))
	suite.Equal(domain.InvoiceIssued, invoice.Status)
}

func (suite *InvoiceServiceTestSuite) TestGenerate_LineItemsAgreeWithSubTotal() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()
	purchase.Quantity = 3
	purchase.TotalAmount = decimal.RequireFromString("100.00")

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockBillingRepo.On("FindBillingByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubscriptionRepo.On("FindSubscriptionByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{PurchaseID: purchase.PurchaseID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().Len(invoice.Items, 1)
	line := invoice.Items[0]
	suite.True(line.UnitPrice.Equal(decimal.RequireFromString("33.33")))
	// The stored line must be internally consistent and match the subtotal,
	// even when the purchase total does not divide evenly.
	suite.True(line.LineTotal.Equal(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))), "got %s", line.LineTotal)
	suite.True(invoice.SubTotal.Equal(decimal.RequireFromString("99.99")))
	suite.True(invoice.TotalAmount.Equal(decimal.RequireFromString("99.99")))
}

func (suite *InvoiceServiceTestSuite) TestGenerate_WithTaxAndDiscount() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockBillingRepo.On("FindBillingByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubscriptionRepo.On("FindSubscriptionByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{
		PurchaseID:     purchase.PurchaseID,
		TaxAmount:      decimal.RequireFromString("150.00"),
		DiscountAmount: decimal.RequireFromString("50.00"),
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(invoice.SubTotal.Equal(decimal.RequireFromString("1000.00")))
	suite.True(invoice.TaxAmount.Equal(decimal.RequireFromString("150.00")))
	suite.True(invoice.DiscountAmount.Equal(decimal.RequireFromString("50.00")))
	suite.True(invoice.TotalAmount.Equal(decimal.RequireFromString("1100.00")))
}

func (suite *InvoiceServiceTestSuite) TestGenerate_LinksSettledBilling() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()
	record := &domain.BillingRecord{
		BillingID:   uuid.NewString(),
		PurchaseID:  purchase.PurchaseID,
		ClientID:    client.ClientID,
		TotalAmount: purchase.TotalAmount,
		PaidAmount:  purchase.TotalAmount,
	}
	subscription := &domain.Subscription{
		SubscriptionID: uuid.NewString(),
		PurchaseID:     purchase.PurchaseID,
	}

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockBillingRepo.On("FindBillingByPurchaseID", ctx, purchase.PurchaseID).Return(record, nil).Once()
	suite.mockSubscriptionRepo.On("FindSubscriptionByPurchaseID", ctx, purchase.PurchaseID).Return(subscription, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{PurchaseID: purchase.PurchaseID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(record.BillingID, invoice.BillingID)
	suite.Equal(subscription.SubscriptionID, invoice.SubscriptionID)
	suite.True(invoice.PaidAmount.Equal(purchase.TotalAmount))
	suite.True(invoice.BalanceAmount.IsZero())
	suite.Equal(domain.InvoicePaid, invoice.Status)
}

func (suite *InvoiceServiceTestSuite) TestGenerate_SecondInvoiceForPurchaseRejected() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockBillingRepo.On("FindBillingByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubscriptionRepo.On("FindSubscriptionByPurchaseID", ctx, purchase.PurchaseID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{PurchaseID: purchase.PurchaseID}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *InvoiceServiceTestSuite) TestGenerate_NegativeDiscountRejected() {
	ctx := context.Background()
	purchase, client := suite.purchaseAndClient()

	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchase.PurchaseID).Return(purchase, nil).Once()
	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()

	_, err := suite.service.GenerateFromPurchase(ctx, dto.GenerateInvoiceRequest{
		PurchaseID:     purchase.PurchaseID,
		DiscountAmount: decimal.RequireFromString("-10.00"),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
