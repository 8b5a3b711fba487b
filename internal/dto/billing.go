package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreateBillingRequest defines the structure for raising a billing record
// from either a subscription or a bare purchase. Exactly one of
// SubscriptionID and PurchaseID must be set.
type CreateBillingRequest struct {
	SubscriptionID string     `json:"subscriptionID"`
	PurchaseID     string     `json:"purchaseID"`
	DueDate        *time.Time `json:"dueDate"`
}

// RecordPaymentRequest defines the structure for recording a payment against
// a billing record.
type RecordPaymentRequest struct {
	BillingID     string                  `json:"billingID" binding:"required"`
	ClientID      string                  `json:"clientID" binding:"required"`
	PONumber      string                  `json:"poNumber"`
	Date          *time.Time              `json:"date"`
	Amount        decimal.Decimal         `json:"amount" binding:"required,gt=0"`
	Method        string                  `json:"method" binding:"required"`
	TransactionID string                  `json:"transactionID"`
	Status        domain.PaymentTxnStatus `json:"status" binding:"omitempty,oneof=COMPLETED PENDING FAILED CANCELLED"`
}

// BillingResponse defines the API representation of a billing record.
// Status and BalanceAmount are evaluated at read time.
type BillingResponse struct {
	BillingID      string                 `json:"billingID"`
	BillNumber     string                 `json:"billNumber"`
	ClientID       string                 `json:"clientID"`
	ClientName     string                 `json:"clientName"`
	SubscriptionID string                 `json:"subscriptionID,omitempty"`
	PurchaseID     string                 `json:"purchaseID,omitempty"`
	PONumber       string                 `json:"poNumber,omitempty"`
	BillDate       time.Time              `json:"billDate"`
	DueDate        time.Time              `json:"dueDate"`
	TotalAmount    decimal.Decimal        `json:"totalAmount"`
	PaidAmount     decimal.Decimal        `json:"paidAmount"`
	BalanceAmount  decimal.Decimal        `json:"balanceAmount"`
	Status         domain.BillingStatus   `json:"status"`
	PaymentStatus  domain.PaymentProgress `json:"paymentStatus"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// BillingListResponse is a paginated list of billing records.
type BillingListResponse struct {
	Items []BillingResponse `json:"items"`
	Pagination
}

// PaymentResponse defines the API representation of a payment.
type PaymentResponse struct {
	PaymentID     string                  `json:"paymentID"`
	BillingID     string                  `json:"billingID"`
	PONumber      string                  `json:"poNumber,omitempty"`
	ClientID      string                  `json:"clientID"`
	Date          time.Time               `json:"date"`
	Amount        decimal.Decimal         `json:"amount"`
	Method        string                  `json:"method"`
	TransactionID string                  `json:"transactionID"`
	Status        domain.PaymentTxnStatus `json:"status"`
}

// PaymentListResponse is a paginated list of payments.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Pagination
}

// RecordPaymentResponse returns the recorded payment plus the billing record
// it settled against, with recomputed amounts.
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Billing BillingResponse `json:"billing"`
}

// ToBillingResponse converts a domain.BillingRecord, evaluating the
// time-dependent status at now.
func ToBillingResponse(b *domain.BillingRecord, now time.Time) BillingResponse {
	return BillingResponse{
		BillingID:      b.BillingID,
		BillNumber:     b.BillNumber,
		ClientID:       b.ClientID,
		ClientName:     b.ClientName,
		SubscriptionID: b.SubscriptionID,
		PurchaseID:     b.PurchaseID,
		PONumber:       b.PONumber,
		BillDate:       b.BillDate,
		DueDate:        b.DueDate,
		TotalAmount:    b.TotalAmount,
		PaidAmount:     b.PaidAmount,
		BalanceAmount:  b.BalanceAmount(),
		Status:         b.StatusAt(now),
		PaymentStatus:  b.PaymentStatus,
		CreatedAt:      b.CreatedAt,
	}
}

// ToBillingListResponse converts a page of billing records.
func ToBillingListResponse(billings []domain.BillingRecord, now time.Time, page, pageSize, total int) BillingListResponse {
	items := make([]BillingResponse, len(billings))
	for i := range billings {
		items[i] = ToBillingResponse(&billings[i], now)
	}
	return BillingListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}

// ToPaymentResponse converts a domain.Payment to its API representation.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BillingID:     p.BillingID,
		PONumber:      p.PONumber,
		ClientID:      p.ClientID,
		Date:          p.Date,
		Amount:        p.Amount,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		Status:        p.Status,
	}
}

// ToPaymentListResponse converts a page of payments.
func ToPaymentListResponse(payments []domain.Payment, page, pageSize, total int) PaymentListResponse {
	items := make([]PaymentResponse, len(payments))
	for i := range payments {
		items[i] = ToPaymentResponse(&payments[i])
	}
	return PaymentListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
