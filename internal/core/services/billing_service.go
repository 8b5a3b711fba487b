package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
	"github.com/subsadmin/subsadmin_backend/internal/utils/billing"
)

// defaultDueTerm is how long after the bill date a billing record falls due
// when the caller does not specify a due date.
const defaultDueTerm = 30 * 24 * time.Hour

// billingService provides business logic for billing records and payments.
type billingService struct {
	BaseService
	billingRepo          portsrepo.BillingRepositoryFacade
	subscriptionRepo     portsrepo.SubscriptionRepositoryFacade
	purchaseRepo         portsrepo.PurchaseReader
	overpaymentTolerance decimal.Decimal
}

// NewBillingService creates a new billing service.
func NewBillingService(billingRepo portsrepo.BillingRepositoryFacade, subscriptionRepo portsrepo.SubscriptionRepositoryFacade, purchaseRepo portsrepo.PurchaseReader, overpaymentTolerance decimal.Decimal) portssvc.BillingSvcFacade {
	return &billingService{
		billingRepo:          billingRepo,
		subscriptionRepo:     subscriptionRepo,
		purchaseRepo:         purchaseRepo,
		overpaymentTolerance: overpaymentTolerance,
	}
}

// newBillNumber generates a unique bill number.
func newBillNumber() string {
	return "BILL-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBilling raises a billing record from a subscription or, for one-off
// orders, directly from a purchase. Exactly one source must be given.
func (s *billingService) CreateBilling(ctx context.Context, req dto.CreateBillingRequest, creatorUserID string) (*domain.BillingRecord, error) {
	if (req.SubscriptionID == "") == (req.PurchaseID == "") {
		return nil, fmt.Errorf("%w: exactly one of subscription_id and purchase_id must be set", apperrors.ErrValidation)
	}

	now := time.Now()
	record := domain.BillingRecord{
		BillingID:  uuid.NewString(),
		BillNumber: newBillNumber(),
		BillDate:   now,
		PaidAmount: decimal.Zero,
		Status:     domain.BillingPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.SubscriptionID != "" {
		subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, req.SubscriptionID)
		if err != nil {
			return nil, fmt.Errorf("failed to find subscription for billing: %w", err)
		}
		record.SubscriptionID = subscription.SubscriptionID
		record.PurchaseID = subscription.PurchaseID
		record.PONumber = subscription.PONumber
		record.ClientID = subscription.ClientID
		record.ClientName = subscription.ClientName
		record.TotalAmount = subscription.TotalAmount
	} else {
		purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, req.PurchaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to find purchase for billing: %w", err)
		}
		record.PurchaseID = purchase.PurchaseID
		record.PONumber = purchase.PONumber
		record.ClientID = purchase.ClientID
		record.ClientName = purchase.ClientName
		record.TotalAmount = purchase.TotalAmount
	}

	if req.DueDate != nil {
		record.DueDate = *req.DueDate
	} else {
		record.DueDate = record.BillDate.Add(defaultDueTerm)
	}

	record.PaymentStatus = domain.PaymentProgressFor(record.PaidAmount, record.TotalAmount)

	if err := s.billingRepo.SaveBilling(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save billing record")
		return nil, fmt.Errorf("failed to create billing record: %w", err)
	}

	s.LogInfo(ctx, "Billing record created", "billing_id", record.BillingID, "bill_number", record.BillNumber)
	return &record, nil
}

// RecordPayment records a payment against a billing record. The paid amount
// and payment status of the billing record are recomputed from the full set
// of COMPLETED payments inside a single database transaction. Overpayment is
// never blocked; excess beyond the tolerance is logged for review.
func (s *billingService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, *domain.BillingRecord, error) {
	record, err := s.billingRepo.FindBillingByID(ctx, req.BillingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find billing record for payment: %w", err)
	}
	if record.ClientID != req.ClientID {
		return nil, nil, fmt.Errorf("%w: client '%s' does not own billing record '%s'", apperrors.ErrValidation, req.ClientID, req.BillingID)
	}

	now := time.Now()
	paymentDate := now
	if req.Date != nil {
		paymentDate = *req.Date
	}
	status := req.Status
	if status == "" {
		status = domain.PaymentCompleted
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		BillingID:     record.BillingID,
		PONumber:      record.PONumber,
		ClientID:      record.ClientID,
		Date:          paymentDate,
		Amount:        req.Amount.Round(2),
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	updated, err := s.billingRepo.SavePaymentAndRecompute(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", "billing_id", record.BillingID)
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if billing.OverpaidBeyondTolerance(updated.TotalAmount, updated.PaidAmount, s.overpaymentTolerance) {
		s.LogWarn(ctx, "Billing record overpaid beyond tolerance",
			"billing_id", updated.BillingID,
			"total_amount", updated.TotalAmount.String(),
			"paid_amount", updated.PaidAmount.String())
	}

	s.LogInfo(ctx, "Payment recorded",
		"payment_id", payment.PaymentID,
		"billing_id", updated.BillingID,
		"payment_status", string(updated.PaymentStatus))
	return &payment, updated, nil
}

// GetBilling retrieves a billing record by ID.
func (s *billingService) GetBilling(ctx context.Context, billingID string) (*domain.BillingRecord, error) {
	record, err := s.billingRepo.FindBillingByID(ctx, billingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get billing record: %w", err)
	}
	return record, nil
}

// ListBillings retrieves a page of billing records, optionally for one client.
func (s *billingService) ListBillings(ctx context.Context, clientID string, page, pageSize int) ([]domain.BillingRecord, int, error) {
	records, total, err := s.billingRepo.ListBillings(ctx, clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list billing records: %w", err)
	}
	return records, total, nil
}

// ListPayments retrieves all payments against a billing record.
func (s *billingService) ListPayments(ctx context.Context, billingID string) ([]domain.Payment, error) {
	if _, err := s.billingRepo.FindBillingByID(ctx, billingID); err != nil {
		return nil, fmt.Errorf("failed to find billing record: %w", err)
	}
	payments, err := s.billingRepo.ListPaymentsByBilling(ctx, billingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// ListClientPayments retrieves a page of a client's payments.
func (s *billingService) ListClientPayments(ctx context.Context, clientID string, page, pageSize int) ([]domain.Payment, int, error) {
	payments, total, err := s.billingRepo.ListPaymentsByClient(ctx, clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list client payments: %w", err)
	}
	return payments, total, nil
}
