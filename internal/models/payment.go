package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persisted form of a payment row.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	BillingID     string          `db:"billing_id"`
	PONumber      string          `db:"po_number"`
	ClientID      string          `db:"client_id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	TransactionID string          `db:"transaction_id"`
	Status        string          `db:"status"`
	AuditFields
}
