package repositories

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// SubscriptionReader defines read operations for subscription data
type SubscriptionReader interface {
	// FindSubscriptionByID retrieves a subscription by its unique identifier.
	FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// FindSubscriptionByPurchaseID retrieves the subscription owned by a purchase.
	FindSubscriptionByPurchaseID(ctx context.Context, purchaseID string) (*domain.Subscription, error)

	// ListSubscriptions retrieves a paginated list of subscriptions, newest first.
	ListSubscriptions(ctx context.Context, clientID string, page, pageSize int) ([]domain.Subscription, int, error)
}

// SubscriptionRepositoryFacade combines all subscription-related repository
// interfaces. Subscription rows are written only through
// PurchaseWriter.SavePurchaseWithSubscription.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
}
