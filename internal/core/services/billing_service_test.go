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

type BillingServiceTestSuite struct {
	suite.Suite
	mockBillingRepo      *MockBillingRepository
	mockSubscriptionRepo *MockSubscriptionRepository
	mockPurchaseRepo     *MockPurchaseRepository
	service              portssvc.BillingSvcFacade
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockBillingRepo = new(MockBillingRepository)
	suite.mockSubscriptionRepo = new(MockSubscriptionRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.service = services.NewBillingService(
		suite.mockBillingRepo,
		suite.mockSubscriptionRepo,
		suite.mockPurchaseRepo,
		decimal.RequireFromString("0.01"),
	)
}

func (suite *BillingServiceTestSuite) TestCreateBilling_FromSubscription() {
	ctx := context.Background()
	subscription := &domain.Subscription{
		SubscriptionID: uuid.NewString(),
		PurchaseID:     uuid.NewString(),
		PONumber:       "PO-AB12CD34",
		ClientID:       uuid.NewString(),
		ClientName:     "Acme Traders",
		TotalAmount:    decimal.RequireFromString("1000.00"),
	}

	suite.mockSubscriptionRepo.On("FindSubscriptionByID", ctx, subscription.SubscriptionID).Return(subscription, nil).Once()

	var saved domain.BillingRecord
	suite.mockBillingRepo.
		On("SaveBilling", ctx, mock.AnythingOfType("domain.BillingRecord")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.BillingRecord)
		}).
		Return(nil).Once()

	record, err := suite.service.CreateBilling(ctx, dto.CreateBillingRequest{SubscriptionID: subscription.SubscriptionID}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Regexp(`^BILL-[0-9A-F]{8}$`, record.BillNumber)
	suite.Equal(subscription.SubscriptionID, record.SubscriptionID)
	suite.Equal(subscription.PurchaseID, record.PurchaseID)
	suite.Equal(subscription.ClientID, record.ClientID)
	suite.True(record.TotalAmount.Equal(subscription.TotalAmount))
	suite.True(record.PaidAmount.IsZero())
	suite.Equal(domain.Unpaid, record.PaymentStatus)
	suite.WithinDuration(record.BillDate.Add(30*24*time.Hour), record.DueDate, time.Second, "due date defaults to thirty days after the bill date")
	suite.Equal(saved.BillingID, record.BillingID)
}

func (suite *BillingServiceTestSuite) TestCreateBilling_RequiresExactlyOneSource() {
	ctx := context.Background()

	_, err := suite.service.CreateBilling(ctx, dto.CreateBillingRequest{}, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateBilling(ctx, dto.CreateBillingRequest{
		SubscriptionID: uuid.NewString(),
		PurchaseID:     uuid.NewString(),
	}, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockBillingRepo.AssertNotCalled(suite.T(), "SaveBilling", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestRecordPayment_PartialThenSettled() {
	ctx := context.Background()
	clientID := uuid.NewString()
	record := &domain.BillingRecord{
		BillingID:     uuid.NewString(),
		BillNumber:    "BILL-11223344",
		ClientID:      clientID,
		PONumber:      "PO-AB12CD34",
		TotalAmount:   decimal.RequireFromString("1000.00"),
		PaidAmount:    decimal.RequireFromString("500.00"),
		PaymentStatus: domain.PartiallyPaid,
	}
	settled := &domain.BillingRecord{
		BillingID:     record.BillingID,
		BillNumber:    record.BillNumber,
		ClientID:      clientID,
		PONumber:      record.PONumber,
		TotalAmount:   record.TotalAmount,
		PaidAmount:    decimal.RequireFromString("1000.00"),
		PaymentStatus: domain.Paid,
	}

	suite.mockBillingRepo.On("FindBillingByID", ctx, record.BillingID).Return(record, nil).Once()

	var savedPayment domain.Payment
	suite.mockBillingRepo.
		On("SavePaymentAndRecompute", ctx, mock.AnythingOfType("domain.Payment")).
		Run(func(args mock.Arguments) {
			savedPayment = args.Get(1).(domain.Payment)
		}).
		Return(settled, nil).Once()

	payment, updated, err := suite.service.RecordPayment(ctx, dto.RecordPaymentRequest{
		BillingID: record.BillingID,
		ClientID:  clientID,
		Amount:    decimal.RequireFromString("500.004"),
		Method:    "BANK_TRANSFER",
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Require().NotNil(updated)
	suite.True(savedPayment.Amount.Equal(decimal.RequireFromString("500.00")), "payment amount is rounded to two decimals")
	suite.Equal(domain.PaymentCompleted, savedPayment.Status, "payment status defaults to completed")
	suite.Equal(record.PONumber, savedPayment.PONumber)
	suite.Equal(domain.Paid, updated.PaymentStatus)
	suite.True(updated.BalanceAmount().IsZero())
}

func (suite *BillingServiceTestSuite) TestRecordPayment_ClientMismatchRejected() {
	ctx := context.Background()
	record := &domain.BillingRecord{
		BillingID:   uuid.NewString(),
		ClientID:    uuid.NewString(),
		TotalAmount: decimal.RequireFromString("100.00"),
	}

	suite.mockBillingRepo.On("FindBillingByID", ctx, record.BillingID).Return(record, nil).Once()

	_, _, err := suite.service.RecordPayment(ctx, dto.RecordPaymentRequest{
		BillingID: record.BillingID,
		ClientID:  uuid.NewString(),
		Amount:    decimal.RequireFromString("100.00"),
		Method:    "CASH",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBillingRepo.AssertNotCalled(suite.T(), "SavePaymentAndRecompute", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestRecordPayment_FailedPaymentDoesNotSettle() {
	ctx := context.Background()
	clientID := uuid.NewString()
	record := &domain.BillingRecord{
		BillingID:     uuid.NewString(),
		ClientID:      clientID,
		TotalAmount:   decimal.RequireFromString("1000.00"),
		PaidAmount:    decimal.Zero,
		PaymentStatus: domain.Unpaid,
	}
	// The repository sums COMPLETED payments only, so a FAILED payment
	// leaves the record untouched.
	unchanged := &domain.BillingRecord{
		BillingID:     record.BillingID,
		ClientID:      clientID,
		TotalAmount:   record.TotalAmount,
		PaidAmount:    decimal.Zero,
		PaymentStatus: domain.Unpaid,
	}

	suite.mockBillingRepo.On("FindBillingByID", ctx, record.BillingID).Return(record, nil).Once()
	suite.mockBillingRepo.
		On("SavePaymentAndRecompute", ctx, mock.MatchedBy(func(p domain.Payment) bool {
			return p.Status == domain.PaymentFailed
		})).
		Return(unchanged, nil).Once()

	_, updated, err := suite.service.RecordPayment(ctx, dto.RecordPaymentRequest{
		BillingID: record.BillingID,
		ClientID:  clientID,
		Amount:    decimal.RequireFromString("1000.00"),
		Method:    "CARD",
		Status:    domain.PaymentFailed,
	}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(updated.PaidAmount.IsZero())
	suite.Equal(domain.Unpaid, updated.PaymentStatus)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
