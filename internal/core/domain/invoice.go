package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the lifecycle of an issued invoice.
type InvoiceStatus string

const (
	InvoiceIssued InvoiceStatus = "ISSUED"
	InvoicePaid   InvoiceStatus = "PAID"
	InvoiceVoid   InvoiceStatus = "VOID"
)

// InvoiceLine is one billed line item. Stored serialized on the invoice row.
type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Invoice is the client-facing document generated from a purchase (and its
// billing record when one exists). At most one invoice exists per purchase;
// the storage layer enforces the uniqueness.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	InvoiceNumber  string          `json:"invoiceNumber"` // unique, system generated
	PurchaseID     string          `json:"purchaseID"`
	BillingID      string          `json:"billingID,omitempty"`
	SubscriptionID string          `json:"subscriptionID,omitempty"`
	ClientID       string          `json:"clientID"`
	ClientName     string          `json:"clientName"`
	ClientEmail    string          `json:"clientEmail"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        time.Time       `json:"dueDate"`
	SubTotal       decimal.Decimal `json:"subTotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	BalanceAmount  decimal.Decimal `json:"balanceAmount"` // TotalAmount - PaidAmount, clamped at zero
	Status         InvoiceStatus   `json:"status"`
	Items          []InvoiceLine   `json:"items"`
	AuditFields
}
