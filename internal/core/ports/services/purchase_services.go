package services

import (
	"context"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase orders
type PurchaseReaderSvc interface {
	// GetPurchase retrieves a purchase by ID.
	GetPurchase(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves a page of purchases, optionally for one client.
	ListPurchases(ctx context.Context, clientID string, page, pageSize int) ([]domain.Purchase, int, error)
}

// PurchaseWriterSvc defines write operations for purchase orders
type PurchaseWriterSvc interface {
	// CreatePurchase persists a new purchase order and, when
	// subscription_active is set, derives and persists its subscription in
	// the same database transaction.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, *domain.Subscription, error)

	// UpdatePurchaseStatus moves a purchase through its fulfilment states.
	UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, userID string) (*domain.Purchase, error)

	// DeletePurchase removes a purchase; fails with ErrConflict when
	// dependent subscriptions, billing records or invoices exist.
	DeletePurchase(ctx context.Context, purchaseID string, userID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
