package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the persisted form of a purchase order row.
type Purchase struct {
	PurchaseID         string          `db:"purchase_id"`
	PONumber           string          `db:"po_number"`
	ClientID           string          `db:"client_id"`
	ClientName         string          `db:"client_name"`
	ProductID          string          `db:"product_id"`
	ProductName        string          `db:"product_name"`
	Quantity           int64           `db:"quantity"`
	Status             string          `db:"status"`
	SubscriptionActive bool            `db:"subscription_active"`
	SubscriptionMonths int             `db:"subscription_months"`
	RecurringCount     int             `db:"recurring_count"`
	DeliveryDate       time.Time       `db:"delivery_date"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	FXRateApplied      decimal.Decimal `db:"fx_rate_applied"`
	AttachmentRef      string          `db:"attachment_ref"`
	AuditFields
}
