package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingRecord is the persisted form of a billing row.
type BillingRecord struct {
	BillingID      string          `db:"billing_id"`
	BillNumber     string          `db:"bill_number"`
	ClientID       string          `db:"client_id"`
	ClientName     string          `db:"client_name"`
	SubscriptionID *string         `db:"subscription_id"`
	PurchaseID     *string         `db:"purchase_id"`
	PONumber       string          `db:"po_number"`
	BillDate       time.Time       `db:"bill_date"`
	DueDate        time.Time       `db:"due_date"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaidAmount     decimal.Decimal `db:"paid_amount"`
	Status         string          `db:"status"`
	PaymentStatus  string          `db:"payment_status"`
	AuditFields
}
