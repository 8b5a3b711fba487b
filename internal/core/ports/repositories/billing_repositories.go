package repositories

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// BillingReader defines read operations for billing data
type BillingReader interface {
	// FindBillingByID retrieves a billing record by its unique identifier.
	FindBillingByID(ctx context.Context, billingID string) (*domain.BillingRecord, error)

	// FindBillingByPurchaseID retrieves the most recent billing record raised
	// against a purchase.
	FindBillingByPurchaseID(ctx context.Context, purchaseID string) (*domain.BillingRecord, error)

	// ListBillings retrieves a paginated list of billing records, newest first.
	ListBillings(ctx context.Context, clientID string, page, pageSize int) ([]domain.BillingRecord, int, error)
}

// BillingWriter defines write operations for billing data
type BillingWriter interface {
	// SaveBilling persists a new billing record.
	SaveBilling(ctx context.Context, billing domain.BillingRecord) error

	// SavePaymentAndRecompute inserts a payment and recomputes the referenced
	// billing record's paid_amount and payment_status from the full set of
	// COMPLETED payments, all inside one database transaction with the
	// billing row locked. Returns the updated billing record.
	SavePaymentAndRecompute(ctx context.Context, payment domain.Payment) (*domain.BillingRecord, error)
}

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByBilling retrieves all payments against a billing record.
	ListPaymentsByBilling(ctx context.Context, billingID string) ([]domain.Payment, error)

	// ListPaymentsByClient retrieves a paginated list of a client's payments.
	ListPaymentsByClient(ctx context.Context, clientID string, page, pageSize int) ([]domain.Payment, int, error)
}

// BillingRepositoryFacade combines all billing-related repository interfaces
type BillingRepositoryFacade interface {
	BillingReader
	BillingWriter
	PaymentReader
	TransactionManager
}
