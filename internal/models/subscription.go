package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is the persisted form of a subscription row. purchase_id
// carries a unique constraint so a purchase can never own two subscriptions.
type Subscription struct {
	SubscriptionID string          `db:"subscription_id"`
	PONumber       string          `db:"po_number"`
	PurchaseID     string          `db:"purchase_id"`
	ClientID       string          `db:"client_id"`
	ClientName     string          `db:"client_name"`
	ProductID      string          `db:"product_id"`
	ProductName    string          `db:"product_name"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	TermMonths     int             `db:"term_months"`
	RecurringCount int             `db:"recurring_count"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Status         string          `db:"status"`
	AuditFields
}
