package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// SubscriptionReaderSvc defines read operations for subscriptions
type SubscriptionReaderSvc interface {
	// GetSubscription retrieves a subscription by ID.
	GetSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// GetSubscriptionByPurchase retrieves the subscription owned by a purchase.
	GetSubscriptionByPurchase(ctx context.Context, purchaseID string) (*domain.Subscription, error)

	// ListSubscriptions retrieves a page of subscriptions, optionally for one client.
	ListSubscriptions(ctx context.Context, clientID string, page, pageSize int) ([]domain.Subscription, int, error)
}

// SubscriptionSvcFacade combines all subscription-related service interfaces.
// Subscriptions are created only through PurchaseWriterSvc.CreatePurchase.
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
}
