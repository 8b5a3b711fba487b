package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoice retrieves an invoice by ID.
	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices, optionally for one client.
	ListInvoices(ctx context.Context, clientID string, page, pageSize int) ([]domain.Invoice, int, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// GenerateFromPurchase builds and persists the invoice for a purchase.
	// At most one invoice exists per purchase; a second call fails with
	// ErrDuplicate.
	GenerateFromPurchase(ctx context.Context, req dto.GenerateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
