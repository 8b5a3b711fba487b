package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreatePurchaseRequest defines the structure for creating a purchase order.
// SubscriptionMonths is the length of one subscription term in months;
// RecurringCount is the number of billing cycles. Both are only meaningful
// when SubscriptionActive is true.
type CreatePurchaseRequest struct {
	ClientID           string          `json:"clientID" binding:"required"`
	ProductID          string          `json:"productID" binding:"required"`
	Quantity           int64           `json:"quantity" binding:"required,gt=0"`
	SubscriptionActive bool            `json:"subscriptionActive"`
	SubscriptionMonths int             `json:"subscriptionMonths" binding:"gte=0"`
	RecurringCount     int             `json:"recurringCount" binding:"gte=0"`
	DeliveryDate       *time.Time      `json:"deliveryDate"`
	TotalAmount        decimal.Decimal `json:"totalAmount" binding:"required,gt=0"`
	AttachmentRef      string          `json:"attachmentRef"`
}

// UpdatePurchaseStatusRequest moves a purchase through its fulfilment states.
type UpdatePurchaseStatusRequest struct {
	Status domain.PurchaseStatus `json:"status" binding:"required,oneof=DRAFT ACTIVE IN_PROGRESS COMPLETED"`
}

// PurchaseResponse defines the API representation of a purchase order.
type PurchaseResponse struct {
	PurchaseID         string                `json:"purchaseID"`
	PONumber           string                `json:"poNumber"`
	ClientID           string                `json:"clientID"`
	ClientName         string                `json:"clientName"`
	ProductID          string                `json:"productID"`
	ProductName        string                `json:"productName"`
	Quantity           int64                 `json:"quantity"`
	Status             domain.PurchaseStatus `json:"status"`
	SubscriptionActive bool                  `json:"subscriptionActive"`
	SubscriptionMonths int                   `json:"subscriptionMonths"`
	RecurringCount     int                   `json:"recurringCount"`
	DeliveryDate       time.Time             `json:"deliveryDate"`
	TotalAmount        decimal.Decimal       `json:"totalAmount"`
	FXRateApplied      decimal.Decimal       `json:"fxRateApplied"`
	AttachmentRef      string                `json:"attachmentRef,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
}

// CreatePurchaseResponse returns the created purchase together with the
// subscription derived from it, when subscription_active was set.
type CreatePurchaseResponse struct {
	Purchase     PurchaseResponse      `json:"purchase"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

// PurchaseListResponse is a paginated list of purchases.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Pagination
}

// ToPurchaseResponse converts a domain.Purchase to its API representation.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:         p.PurchaseID,
		PONumber:           p.PONumber,
		ClientID:           p.ClientID,
		ClientName:         p.ClientName,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		Quantity:           p.Quantity,
		Status:             p.Status,
		SubscriptionActive: p.SubscriptionActive,
		SubscriptionMonths: p.SubscriptionMonths,
		RecurringCount:     p.RecurringCount,
		DeliveryDate:       p.DeliveryDate,
		TotalAmount:        p.TotalAmount,
		FXRateApplied:      p.FXRateApplied,
		AttachmentRef:      p.AttachmentRef,
		CreatedAt:          p.CreatedAt,
	}
}

// ToPurchaseListResponse converts a page of purchases.
func ToPurchaseListResponse(purchases []domain.Purchase, page, pageSize, total int) PurchaseListResponse {
	items := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		items[i] = ToPurchaseResponse(&purchases[i])
	}
	return PurchaseListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
