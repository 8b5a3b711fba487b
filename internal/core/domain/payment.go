package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTxnStatus is the transaction status of an individual payment.
// Only COMPLETED payments count toward a billing record's paid amount.
type PaymentTxnStatus string

const (
	PaymentCompleted PaymentTxnStatus = "COMPLETED"
	PaymentPending   PaymentTxnStatus = "PENDING"
	PaymentFailed    PaymentTxnStatus = "FAILED"
	PaymentCancelled PaymentTxnStatus = "CANCELLED"
)

// Payment records money received against a billing record.
type Payment struct {
	PaymentID     string           `json:"paymentID"`
	BillingID     string           `json:"billingID"`
	PONumber      string           `json:"poNumber,omitempty"`
	ClientID      string           `json:"clientID"`
	Date          time.Time        `json:"date"`
	Amount        decimal.Decimal  `json:"amount"`
	Method        string           `json:"method"`
	TransactionID string           `json:"transactionID"`
	Status        PaymentTxnStatus `json:"status"`
	AuditFields
}

// Counted reports whether this payment contributes to paid_amount.
func (p Payment) Counted() bool {
	return p.Status == PaymentCompleted
}
