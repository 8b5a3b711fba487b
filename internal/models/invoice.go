package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the persisted form of an invoice row. Items holds the line
// items serialized as JSON; purchase_id carries a unique constraint so a
// purchase can be invoiced at most once.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	InvoiceNumber  string          `db:"invoice_number"`
	PurchaseID     string          `db:"purchase_id"`
	BillingID      *string         `db:"billing_id"`
	SubscriptionID *string         `db:"subscription_id"`
	ClientID       string          `db:"client_id"`
	ClientName     string          `db:"client_name"`
	ClientEmail    string          `db:"client_email"`
	IssueDate      time.Time       `db:"issue_date"`
	DueDate        time.Time       `db:"due_date"`
	SubTotal       decimal.Decimal `db:"sub_total"`
	TaxAmount      decimal.Decimal `db:"tax_amount"`
	DiscountAmount decimal.Decimal `db:"discount_amount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	BalanceAmount  decimal.Decimal `db:"balance_amount"`
	Status         string          `db:"status"`
	Items          []byte          `db:"items"` // JSON-encoded []domain.InvoiceLine
	AuditFields
}
