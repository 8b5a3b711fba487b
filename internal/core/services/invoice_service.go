package services

import (
	"context"
	"errors"
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

// invoiceService provides business logic for invoice generation. Each
// purchase produces at most one invoice; the storage layer enforces it.
type invoiceService struct {
	BaseService
	invoiceRepo      portsrepo.InvoiceRepositoryFacade
	purchaseRepo     portsrepo.PurchaseReader
	clientRepo       portsrepo.ClientRepositoryFacade
	billingRepo      portsrepo.BillingReader
	subscriptionRepo portsrepo.SubscriptionReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, purchaseRepo portsrepo.PurchaseReader, clientRepo portsrepo.ClientRepositoryFacade, billingRepo portsrepo.BillingReader, subscriptionRepo portsrepo.SubscriptionReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:      invoiceRepo,
		purchaseRepo:     purchaseRepo,
		clientRepo:       clientRepo,
		billingRepo:      billingRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// newInvoiceNumber generates a unique invoice number.
func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// GenerateFromPurchase builds and persists the invoice for a purchase.
// Amounts come from the purchase; paid amount comes from the purchase's
// billing record when one exists. A second call for the same purchase fails
// with ErrDuplicate.
func (s *invoiceService) GenerateFromPurchase(ctx context.Context, req dto.GenerateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, req.PurchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase for invoice: %w", err)
	}

	client, err := s.clientRepo.FindClientByID(ctx, purchase.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client for invoice: %w", err)
	}

	quantity := purchase.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	// The rounded unit price is what the invoice shows, so the line total and
	// the subtotal are both computed from it. They may differ from the
	// purchase total by a rounding remainder when it does not divide evenly.
	unitPrice := purchase.TotalAmount.Div(decimal.NewFromInt(quantity)).Round(2)
	lines := []domain.InvoiceLine{{
		Description: purchase.ProductName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   billing.LineTotal(unitPrice, quantity),
	}}

	totals, err := billing.ComputeTotals(lines, req.TaxAmount, req.DiscountAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		InvoiceNumber:  newInvoiceNumber(),
		PurchaseID:     purchase.PurchaseID,
		ClientID:       client.ClientID,
		ClientName:     client.DisplayName,
		ClientEmail:    client.Email,
		IssueDate:      now,
		DueDate:        now.Add(defaultDueTerm),
		SubTotal:       totals.SubTotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		PaidAmount:     decimal.Zero,
		Status:         domain.InvoiceIssued,
		Items:          lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}

	// Link the billing record and subscription when they exist. Absence of
	// either is normal for one-off orders.
	if record, err := s.billingRepo.FindBillingByPurchaseID(ctx, purchase.PurchaseID); err == nil {
		invoice.BillingID = record.BillingID
		invoice.PaidAmount = record.PaidAmount
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up billing record for invoice: %w", err)
	}
	if subscription, err := s.subscriptionRepo.FindSubscriptionByPurchaseID(ctx, purchase.PurchaseID); err == nil {
		invoice.SubscriptionID = subscription.SubscriptionID
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up subscription for invoice: %w", err)
	}

	invoice.BalanceAmount = billing.Balance(invoice.TotalAmount, invoice.PaidAmount)
	if invoice.BalanceAmount.IsZero() && invoice.PaidAmount.GreaterThan(decimal.Zero) {
		invoice.Status = domain.InvoicePaid
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: purchase '%s' already has an invoice", apperrors.ErrDuplicate, purchase.PurchaseID)
		}
		s.LogError(ctx, err, "Failed to save invoice", "purchase_id", purchase.PurchaseID)
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice generated", "invoice_id", invoice.InvoiceID, "invoice_number", invoice.InvoiceNumber)
	return &invoice, nil
}

// GetInvoice retrieves an invoice by ID.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return invoice, nil
}

// ListInvoices retrieves a page of invoices, optionally for one client.
func (s *invoiceService) ListInvoices(ctx context.Context, clientID string, page, pageSize int) ([]domain.Invoice, int, error) {
	invoices, total, err := s.invoiceRepo.ListInvoices(ctx, clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, total, nil
}
