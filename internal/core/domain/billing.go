package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingStatus tracks the settlement state of a billing record.
type BillingStatus string

const (
	BillingPending BillingStatus = "PENDING"
	BillingPaid    BillingStatus = "PAID"
	BillingOverdue BillingStatus = "OVERDUE"
)

// PaymentProgress classifies how much of the billed total has been paid.
// Distinct from the transaction status on individual payments.
type PaymentProgress string

const (
	Unpaid        PaymentProgress = "UNPAID"
	PartiallyPaid PaymentProgress = "PARTIALLY_PAID"
	Paid          PaymentProgress = "PAID"
)

// BillingRecord accumulates payments against a subscription or purchase.
// PaidAmount is the sum of COMPLETED payment amounts and is recomputed
// whenever a payment lands, inside the same database transaction.
type BillingRecord struct {
	BillingID      string          `json:"billingID"`
	BillNumber     string          `json:"billNumber"` // unique, system generated
	ClientID       string          `json:"clientID"`
	ClientName     string          `json:"clientName"`
	SubscriptionID string          `json:"subscriptionID,omitempty"`
	PurchaseID     string          `json:"purchaseID,omitempty"`
	PONumber       string          `json:"poNumber,omitempty"`
	BillDate       time.Time       `json:"billDate"`
	DueDate        time.Time       `json:"dueDate"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	Status         BillingStatus   `json:"status"`
	PaymentStatus  PaymentProgress `json:"paymentStatus"`
	AuditFields
}

// PaymentProgressFor derives the payment classification purely from amounts.
func PaymentProgressFor(paid, total decimal.Decimal) PaymentProgress {
	switch {
	case paid.GreaterThanOrEqual(total) && total.GreaterThan(decimal.Zero):
		return Paid
	case paid.GreaterThan(decimal.Zero):
		return PartiallyPaid
	default:
		return Unpaid
	}
}

// StatusAt computes the display status of the record: paid once settled,
// overdue past the due date, pending otherwise. Time-dependent, so it is
// recomputed on every read.
func (b BillingRecord) StatusAt(now time.Time) BillingStatus {
	if b.PaidAmount.GreaterThanOrEqual(b.TotalAmount) && b.TotalAmount.GreaterThan(decimal.Zero) {
		return BillingPaid
	}
	if b.DueDate.Before(now) {
		return BillingOverdue
	}
	return BillingPending
}

// BalanceAmount is the outstanding amount, clamped at zero so overpayment
// never surfaces as a negative balance.
func (b BillingRecord) BalanceAmount() decimal.Decimal {
	balance := b.TotalAmount.Sub(b.PaidAmount)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
