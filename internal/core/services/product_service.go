package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/apperrors"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	portsrepo "github.com/subsadmin/subsadmin_backend/internal/core/ports/repositories"
	portssvc "github.com/subsadmin/subsadmin_backend/internal/core/ports/services"
	"github.com/subsadmin/subsadmin_backend/internal/dto"
)

// productService provides business logic for the product catalog. The BDT
// price is computed here at write time, never accepted from the caller.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	vendorRepo  portsrepo.VendorRepositoryFacade
	rateReader  portsrepo.ExchangeRateReader
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, vendorRepo portsrepo.VendorRepositoryFacade, rateReader portsrepo.ExchangeRateReader) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
		rateReader:  rateReader,
	}
}

// resolveRateToBDT returns the multiplier from the given currency to BDT.
// BDT itself converts at 1.
func (s *productService) resolveRateToBDT(ctx context.Context, currencyCode string) (decimal.Decimal, error) {
	if currencyCode == domain.PivotCurrencyCode {
		return decimal.NewFromInt(1), nil
	}
	rate, err := s.rateReader.FindRate(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate configured for currency '%s'", apperrors.ErrValidation, currencyCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve rate for '%s': %w", currencyCode, err)
	}
	return rate.Rate, nil
}

// CreateProduct handles the creation of a new product, deriving its BDT price
// from the current base-currency rate.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor '%s' not found", apperrors.ErrValidation, req.VendorID)
		}
		return nil, fmt.Errorf("failed to validate vendor '%s': %w", req.VendorID, err)
	}

	baseCurrency := strings.ToUpper(req.BaseCurrencyCode)
	rate, err := s.resolveRateToBDT(ctx, baseCurrency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:           uuid.NewString(),
		Name:                req.Name,
		VendorID:            req.VendorID,
		Category:            req.Category,
		BasePrice:           req.BasePrice,
		BaseCurrencyCode:    baseCurrency,
		ProfitMarginPercent: req.ProfitMarginPercent,
		BDTPrice:            domain.FinalBDTPrice(req.BasePrice, req.ProfitMarginPercent, rate),
		FXRateApplied:       rate,
		Status:              domain.ProductActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", "product_id", product.ProductID, "bdt_price", product.BDTPrice.String())
	return &product, nil
}

// UpdateProduct applies the provided partial update to a product. Changing
// any pricing input re-derives the BDT price with the current rate; old
// purchases keep the price they were created with.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	repriced := false
	if req.BasePrice != nil {
		product.BasePrice = *req.BasePrice
		repriced = true
	}
	if req.BaseCurrencyCode != nil {
		product.BaseCurrencyCode = strings.ToUpper(*req.BaseCurrencyCode)
		repriced = true
	}
	if req.ProfitMarginPercent != nil {
		product.ProfitMarginPercent = *req.ProfitMarginPercent
		repriced = true
	}

	if repriced {
		rate, err := s.resolveRateToBDT(ctx, product.BaseCurrencyCode)
		if err != nil {
			return nil, err
		}
		product.BDTPrice = domain.FinalBDTPrice(product.BasePrice, product.ProfitMarginPercent, rate)
		product.FXRateApplied = rate
	}

	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", "product_id", productID)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeactivateProduct retires a product from sale without deleting it, keeping
// historical purchases intact.
func (s *productService) DeactivateProduct(ctx context.Context, productID string, userID string) error {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return fmt.Errorf("failed to find product for deactivation: %w", err)
	}
	if err := s.productRepo.DeactivateProduct(ctx, productID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate product", "product_id", productID)
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	s.LogInfo(ctx, "Product deactivated", "product_id", productID)
	return nil
}

// GetProduct retrieves a product by ID.
func (s *productService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListProducts retrieves a page of products, optionally filtered to a vendor.
func (s *productService) ListProducts(ctx context.Context, vendorID string, page, pageSize int) ([]domain.Product, int, error) {
	products, total, err := s.productRepo.ListProducts(ctx, vendorID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}
