package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelInvoice converts a domain invoice to its persisted form, serializing
// the line items to JSON.
func ToModelInvoice(inv domain.Invoice) (models.Invoice, error) {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to serialize invoice items: %w", err)
	}
	return models.Invoice{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		PurchaseID:     inv.PurchaseID,
		BillingID:      optionalRef(inv.BillingID),
		SubscriptionID: optionalRef(inv.SubscriptionID),
		ClientID:       inv.ClientID,
		ClientName:     inv.ClientName,
		ClientEmail:    inv.ClientEmail,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		SubTotal:       inv.SubTotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		BalanceAmount:  inv.BalanceAmount,
		Status:         string(inv.Status),
		Items:          items,
		AuditFields:    ToModelAuditFields(inv.AuditFields),
	}, nil
}

// ToDomainInvoice converts a persisted invoice row to the domain form.
func ToDomainInvoice(inv models.Invoice) (domain.Invoice, error) {
	var items []domain.InvoiceLine
	if len(inv.Items) > 0 {
		if err := json.Unmarshal(inv.Items, &items); err != nil {
			return domain.Invoice{}, fmt.Errorf("failed to deserialize invoice items: %w", err)
		}
	}
	return domain.Invoice{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		PurchaseID:     inv.PurchaseID,
		BillingID:      derefOrEmpty(inv.BillingID),
		SubscriptionID: derefOrEmpty(inv.SubscriptionID),
		ClientID:       inv.ClientID,
		ClientName:     inv.ClientName,
		ClientEmail:    inv.ClientEmail,
		IssueDate:      inv.IssueDate,
		DueDate:        inv.DueDate,
		SubTotal:       inv.SubTotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		PaidAmount:     inv.PaidAmount,
		BalanceAmount:  inv.BalanceAmount,
		Status:         domain.InvoiceStatus(inv.Status),
		Items:          items,
		AuditFields:    ToDomainAuditFields(inv.AuditFields),
	}, nil
}
