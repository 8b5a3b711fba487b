package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus tracks the fulfilment state of a purchase order.
type PurchaseStatus string

const (
	PurchaseDraft      PurchaseStatus = "DRAFT"
	PurchaseActive     PurchaseStatus = "ACTIVE"
	PurchaseInProgress PurchaseStatus = "IN_PROGRESS"
	PurchaseCompleted  PurchaseStatus = "COMPLETED"
)

// Purchase records an order of a product by a client. Client and product names
// are write-time projections copied at creation so list views need no joins;
// the creating service is the single point keeping them in sync.
type Purchase struct {
	PurchaseID         string          `json:"purchaseID"`
	PONumber           string          `json:"poNumber"` // unique, system generated
	ClientID           string          `json:"clientID"`
	ClientName         string          `json:"clientName"`
	ProductID          string          `json:"productID"`
	ProductName        string          `json:"productName"`
	Quantity           int64           `json:"quantity"`
	Status             PurchaseStatus  `json:"status"`
	SubscriptionActive bool            `json:"subscriptionActive"`
	SubscriptionMonths int             `json:"subscriptionMonths"` // length of one term
	RecurringCount     int             `json:"recurringCount"`     // number of billing cycles
	DeliveryDate       time.Time       `json:"deliveryDate"`
	TotalAmount        decimal.Decimal `json:"totalAmount"` // in BDT
	FXRateApplied      decimal.Decimal `json:"fxRateApplied"`
	AttachmentRef      string          `json:"attachmentRef,omitempty"`
	AuditFields
}
