package repositories

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByPurchaseID retrieves the invoice generated for a purchase.
	FindInvoiceByPurchaseID(ctx context.Context, purchaseID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices, newest first.
	ListInvoices(ctx context.Context, clientID string, page, pageSize int) ([]domain.Invoice, int, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice. Implementations return ErrDuplicate
	// when the purchase already has an invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
