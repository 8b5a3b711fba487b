package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// GenerateInvoiceRequest defines the structure for generating an invoice from
// a purchase. Tax and discount default to zero.
type GenerateInvoiceRequest struct {
	PurchaseID     string          `json:"purchaseID" binding:"required"`
	TaxAmount      decimal.Decimal `json:"taxAmount" binding:"gte=0"`
	DiscountAmount decimal.Decimal `json:"discountAmount" binding:"gte=0"`
	DueDate        *time.Time      `json:"dueDate"`
}

// InvoiceResponse defines the API representation of an invoice.
type InvoiceResponse struct {
	InvoiceID      string               `json:"invoiceID"`
	InvoiceNumber  string               `json:"invoiceNumber"`
	PurchaseID     string               `json:"purchaseID"`
	BillingID      string               `json:"billingID,omitempty"`
	SubscriptionID string               `json:"subscriptionID,omitempty"`
	ClientID       string               `json:"clientID"`
	ClientName     string               `json:"clientName"`
	ClientEmail    string               `json:"clientEmail"`
	IssueDate      time.Time            `json:"issueDate"`
	DueDate        time.Time            `json:"dueDate"`
	SubTotal       decimal.Decimal      `json:"subTotal"`
	TaxAmount      decimal.Decimal      `json:"taxAmount"`
	DiscountAmount decimal.Decimal      `json:"discountAmount"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	PaidAmount     decimal.Decimal      `json:"paidAmount"`
	BalanceAmount  decimal.Decimal      `json:"balanceAmount"`
	Status         domain.InvoiceStatus `json:"status"`
	Items          []domain.InvoiceLine `json:"items"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// InvoiceListResponse is a paginated list of invoices.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Pagination
}

// ToInvoiceResponse converts a domain.Invoice to its API representation.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		InvoiceNumber:  inv.InvoiceNumber,
		PurchaseID:     inv.PurchaseID,
		BillingID:      inv.BillingID,
		SubscriptionID: inv.SubscriptionID,
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
		Status:         inv.Status,
		Items:          inv.Items,
		CreatedAt:      inv.CreatedAt,
	}
}

// ToInvoiceListResponse converts a page of invoices.
func ToInvoiceListResponse(invoices []domain.Invoice, page, pageSize, total int) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		items[i] = ToInvoiceResponse(&invoices[i])
	}
	return InvoiceListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
