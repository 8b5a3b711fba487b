package repositories

import (
	"context"
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// PurchaseReader defines read operations for purchase order data
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// FindPurchaseByPONumber retrieves a purchase by its PO number.
	FindPurchaseByPONumber(ctx context.Context, poNumber string) (*domain.Purchase, error)

	// ListPurchases retrieves a paginated list of purchases, newest first.
	ListPurchases(ctx context.Context, clientID string, page, pageSize int) ([]domain.Purchase, int, error)
}

// PurchaseWriter defines write operations for purchase order data
type PurchaseWriter interface {
	// SavePurchase persists a new purchase without a subscription.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// SavePurchaseWithSubscription persists a purchase and its derived
	// subscription in a single database transaction, so neither can exist
	// without the other.
	SavePurchaseWithSubscription(ctx context.Context, purchase domain.Purchase, subscription domain.Subscription) error

	// UpdatePurchaseStatus moves a purchase through its fulfilment states.
	UpdatePurchaseStatus(ctx context.Context, purchaseID string, status domain.PurchaseStatus, userID string, now time.Time) error

	// DeletePurchase removes a purchase. Implementations return ErrConflict
	// when dependent subscriptions, billing records or invoices exist.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
	TransactionManager
}
