package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// BillingReaderSvc defines read operations for billing records
type BillingReaderSvc interface {
	// GetBilling retrieves a billing record by ID.
	GetBilling(ctx context.Context, billingID string) (*domain.BillingRecord, error)

	// ListBillings retrieves a page of billing records, optionally for one client.
	ListBillings(ctx context.Context, clientID string, page, pageSize int) ([]domain.BillingRecord, int, error)

	// ListPayments retrieves all payments against a billing record.
	ListPayments(ctx context.Context, billingID string) ([]domain.Payment, error)

	// ListClientPayments retrieves a page of a client's payments.
	ListClientPayments(ctx context.Context, clientID string, page, pageSize int) ([]domain.Payment, int, error)
}

// BillingWriterSvc defines write operations for billing records
type BillingWriterSvc interface {
	// CreateBilling raises a billing record from a subscription or purchase.
	CreateBilling(ctx context.Context, req dto.CreateBillingRequest, creatorUserID string) (*domain.BillingRecord, error)

	// RecordPayment records a payment and recomputes the billing record's
	// paid_amount and payment_status atomically.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, creatorUserID string) (*domain.Payment, *domain.BillingRecord, error)
}

// BillingSvcFacade combines all billing-related service interfaces
type BillingSvcFacade interface {
	BillingReaderSvc
	BillingWriterSvc
}
