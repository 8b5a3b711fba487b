package services

import (
	"context"
	"fmt"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
)

// subscriptionService provides read access to subscriptions. Subscriptions
// are written only as part of purchase creation.
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo}
}

// GetSubscription retrieves a subscription by ID.
func (s *subscriptionService) GetSubscription(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscription, nil
}

// GetSubscriptionByPurchase retrieves the subscription owned by a purchase.
func (s *subscriptionService) GetSubscriptionByPurchase(ctx context.Context, purchaseID string) (*domain.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByPurchaseID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription for purchase: %w", err)
	}
	return subscription, nil
}

// ListSubscriptions retrieves a page of subscriptions, optionally for one client.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, clientID string, page, pageSize int) ([]domain.Subscription, int, error) {
	subscriptions, total, err := s.subscriptionRepo.ListSubscriptions(ctx, clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subscriptions, total, nil
}
