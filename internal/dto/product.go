package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// CreateProductRequest defines the structure for creating a new product.
// The BDT price is derived server-side from the base price, the margin and
// the current base-currency rate; it is never accepted from the caller.
type CreateProductRequest struct {
	Name                string          `json:"name" binding:"required"`
	VendorID            string          `json:"vendorID" binding:"required"`
	Category            string          `json:"category"`
	BasePrice           decimal.Decimal `json:"basePrice" binding:"required,gt=0"`
	BaseCurrencyCode    string          `json:"baseCurrencyCode" binding:"required,len=3,uppercase"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent" binding:"gte=0"`
}

// UpdateProductRequest defines the updatable fields of a product.
type UpdateProductRequest struct {
	Name                *string          `json:"name"`
	Category            *string          `json:"category"`
	BasePrice           *decimal.Decimal `json:"basePrice" binding:"omitempty,gt=0"`
	BaseCurrencyCode    *string          `json:"baseCurrencyCode" binding:"omitempty,len=3,uppercase"`
	ProfitMarginPercent *decimal.Decimal `json:"profitMarginPercent" binding:"omitempty,gte=0"`
	Status              *domain.ProductStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ProductResponse defines the API representation of a product.
type ProductResponse struct {
	ProductID           string               `json:"productID"`
	Name                string               `json:"name"`
	VendorID            string               `json:"vendorID"`
	Category            string               `json:"category"`
	BasePrice           decimal.Decimal      `json:"basePrice"`
	BaseCurrencyCode    string               `json:"baseCurrencyCode"`
	ProfitMarginPercent decimal.Decimal      `json:"profitMarginPercent"`
	BDTPrice            decimal.Decimal      `json:"bdtPrice"`
	FXRateApplied       decimal.Decimal      `json:"fxRateApplied"`
	Status              domain.ProductStatus `json:"status"`
	CreatedAt           time.Time            `json:"createdAt"`
}

// ProductListResponse is a paginated list of products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Pagination
}

// ToProductResponse converts a domain.Product to its API representation.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:           p.ProductID,
		Name:                p.Name,
		VendorID:            p.VendorID,
		Category:            p.Category,
		BasePrice:           p.BasePrice,
		BaseCurrencyCode:    p.BaseCurrencyCode,
		ProfitMarginPercent: p.ProfitMarginPercent,
		BDTPrice:            p.BDTPrice,
		FXRateApplied:       p.FXRateApplied,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
	}
}

// ToProductListResponse converts a page of products.
func ToProductListResponse(products []domain.Product, page, pageSize, total int) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = ToProductResponse(&products[i])
	}
	return ProductListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
