package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// SubscriptionResponse defines the API representation of a subscription.
// DisplayStatus, NextBillingDate and ProgressPercent are computed against the
// read-time clock and are never stored.
type SubscriptionResponse struct {
	SubscriptionID  string                    `json:"subscriptionID"`
	PONumber        string                    `json:"poNumber"`
	PurchaseID      string                    `json:"purchaseID"`
	ClientID        string                    `json:"clientID"`
	ClientName      string                    `json:"clientName"`
	ProductID       string                    `json:"productID"`
	ProductName     string                    `json:"productName"`
	StartDate       time.Time                 `json:"startDate"`
	EndDate         time.Time                 `json:"endDate"`
	TermMonths      int                       `json:"termMonths"`
	RecurringCount  int                       `json:"recurringCount"`
	TotalAmount     decimal.Decimal           `json:"totalAmount"`
	DisplayStatus   domain.SubscriptionStatus `json:"displayStatus"`
	NextBillingDate time.Time                 `json:"nextBillingDate"`
	ProgressPercent decimal.Decimal           `json:"progressPercent"`
	CreatedAt       time.Time                 `json:"createdAt"`
}

// SubscriptionListResponse is a paginated list of subscriptions.
type SubscriptionListResponse struct {
	Items []SubscriptionResponse `json:"items"`
	Pagination
}

// ToSubscriptionResponse converts a domain.Subscription, evaluating the
// time-dependent fields at now.
func ToSubscriptionResponse(s *domain.Subscription, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID:  s.SubscriptionID,
		PONumber:        s.PONumber,
		PurchaseID:      s.PurchaseID,
		ClientID:        s.ClientID,
		ClientName:      s.ClientName,
		ProductID:       s.ProductID,
		ProductName:     s.ProductName,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		TermMonths:      s.TermMonths,
		RecurringCount:  s.RecurringCount,
		TotalAmount:     s.TotalAmount,
		DisplayStatus:   s.StatusAt(now),
		NextBillingDate: s.NextBillingDate(now),
		ProgressPercent: s.ProgressPercent(now),
		CreatedAt:       s.CreatedAt,
	}
}

// ToSubscriptionListResponse converts a page of subscriptions.
func ToSubscriptionListResponse(subs []domain.Subscription, now time.Time, page, pageSize, total int) SubscriptionListResponse {
	items := make([]SubscriptionResponse, len(subs))
	for i := range subs {
		items[i] = ToSubscriptionResponse(&subs[i], now)
	}
	return SubscriptionListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
