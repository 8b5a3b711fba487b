package repositories

import (
	"context"
	"time"

	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// ClientRepositoryFacade defines persistence operations for clients.
type ClientRepositoryFacade interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, page, pageSize int) ([]domain.Client, int, error)
	// DeleteClient removes a client; returns ErrConflict when dependent
	// purchases, billing records or invoices exist.
	DeleteClient(ctx context.Context, clientID string) error
}

// VendorRepositoryFacade defines persistence operations for vendors.
type VendorRepositoryFacade interface {
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, page, pageSize int) ([]domain.Vendor, int, error)
}

// ProductRepositoryFacade defines persistence operations for products.
type ProductRepositoryFacade interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, vendorID string, page, pageSize int) ([]domain.Product, int, error)
	DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error
}

// CurrencyRepositoryFacade defines persistence operations for currencies.
type CurrencyRepositoryFacade interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
