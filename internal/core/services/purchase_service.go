package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// purchaseService provides business logic for purchase orders, including the
// derivation of subscriptions from subscription-enabled purchases.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		clientRepo:   clientRepo,
		productRepo:  productRepo,
	}
}

// newPONumber generates a unique purchase order number.
func newPONumber() string {
	return "PO-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreatePurchase persists a new purchase order. When subscription_active is
// set, the derived subscription is persisted in the same database transaction
// so neither row can exist without the other.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, *domain.Subscription, error) {
	if req.SubscriptionActive && req.SubscriptionMonths <= 0 {
		return nil, nil, fmt.Errorf("%w: subscription_months must be positive for a subscription purchase", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: client '%s'", apperrors.ErrNotFound, req.ClientID)
		}
		return nil, nil, fmt.Errorf("failed to validate client '%s': %w", req.ClientID, err)
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: product '%s'", apperrors.ErrNotFound, req.ProductID)
		}
		return nil, nil, fmt.Errorf("failed to validate product '%s': %w", req.ProductID, err)
	}
	if product.Status != domain.ProductActive {
		return nil, nil, fmt.Errorf("%w: product '%s' is not active", apperrors.ErrValidation, req.ProductID)
	}

	now := time.Now()
	deliveryDate := time.Time{}
	if req.DeliveryDate != nil {
		deliveryDate = *req.DeliveryDate
	}

	recurringCount := req.RecurringCount
	if req.SubscriptionActive && recurringCount < 1 {
		recurringCount = 1
	}

	purchase := domain.Purchase{
		PurchaseID:         uuid.NewString(),
		PONumber:           newPONumber(),
		ClientID:           client.ClientID,
		ClientName:         client.DisplayName,
		ProductID:          product.ProductID,
		ProductName:        product.Name,
		Quantity:           req.Quantity,
		Status:             domain.PurchaseActive,
		SubscriptionActive: req.SubscriptionActive,
		SubscriptionMonths: req.SubscriptionMonths,
		RecurringCount:     recurringCount,
		DeliveryDate:       deliveryDate,
		TotalAmount:        req.TotalAmount.Round(2),
		FXRateApplied:      product.FXRateApplied,
		AttachmentRef:      req.AttachmentRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if !purchase.SubscriptionActive {
		if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
			s.LogError(ctx, err, "Failed to save purchase")
			return nil, nil, fmt.Errorf("failed to create purchase: %w", err)
		}
		s.LogInfo(ctx, "Purchase created", "purchase_id", purchase.PurchaseID, "po_number", purchase.PONumber)
		return &purchase, nil, nil
	}

	subscription := domain.DeriveSubscription(purchase, now)
	subscription.SubscriptionID = uuid.NewString()
	subscription.AuditFields = purchase.AuditFields

	if err := s.purchaseRepo.SavePurchaseWithSubscription(ctx, purchase, subscription); err != nil {
		s.LogError(ctx, err, "Failed to save purchase with subscription")
		return nil, nil, fmt.Errorf("failed to create purchase with subscription: %w", err)
	}

	s.LogInfo(ctx, "Purchase created with subscription",
		"purchase_id", purchase.PurchaseID,
		"po_number", purchase.PONumber,
		"subscription_id", subscription.SubscriptionID,
		"subscription_end", subscription.EndDate.Format(time.DateOnly))
	return &purchase, &subscription, nil
}

// GetPurchase retrieves a purchase by ID.
func (s *purchaseService) GetPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return purchase, nil
}

// ListPurchases retrieves a page of purchases, optionally for one client.
func (s *purchaseService) ListPurchases(ctx context.Context, clientID string, page, pageSize int) ([]domain.Purchase, int, error) {
	purchases, total, err := s.purchaseRepo.ListPurchases(ctx, clientID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, total, nil
}

// UpdatePurchaseStatus moves a purchase through its fulfilment states.
func (s *purchaseService) UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, userID string) (*domain.Purchase, error) {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return nil, fmt.Errorf("failed to find purchase for status update: %w", err)
	}

	now := time.Now()
	if err := s.purchaseRepo.UpdatePurchaseStatus(ctx, purchaseID, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update purchase status", "purchase_id", purchaseID)
		return nil, fmt.Errorf("failed to update purchase status: %w", err)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload purchase after status update: %w", err)
	}
	return purchase, nil
}

// DeletePurchase removes a purchase. The repository refuses the delete with
// ErrConflict while a subscription, billing record or invoice references it.
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string, userID string) error {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return fmt.Errorf("failed to find purchase for delete: %w", err)
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", "purchase_id", purchaseID)
		return fmt.Errorf("failed to delete purchase: %w", err)
	}

	s.LogInfo(ctx, "Purchase deleted", "purchase_id", purchaseID, "deleted_by", userID)
	return nil
}
