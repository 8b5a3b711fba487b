package mapping

import (
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
	"github.com/subsadmin/subsadmin_backend/internal/models"
)

// ToModelProduct converts a domain product to its persisted form.
func ToModelProduct(p domain.Product) models.Product {
	return models.Product{
		ProductID:           p.ProductID,
		Name:                p.Name,
		VendorID:            p.VendorID,
		Category:            p.Category,
		BasePrice:           p.BasePrice,
		BaseCurrencyCode:    p.BaseCurrencyCode,
		ProfitMarginPercent: p.ProfitMarginPercent,
		BDTPrice:            p.BDTPrice,
		FXRateApplied:       p.FXRateApplied,
		Status:              string(p.Status),
		AuditFields:         ToModelAuditFields(p.AuditFields),
	}
}

// ToDomainProduct converts a persisted product row to the domain form.
func ToDomainProduct(p models.Product) domain.Product {
	return domain.Product{
		ProductID:           p.ProductID,
		Name:                p.Name,
		VendorID:            p.VendorID,
		Category:            p.Category,
		BasePrice:           p.BasePrice,
		BaseCurrencyCode:    p.BaseCurrencyCode,
		ProfitMarginPercent: p.ProfitMarginPercent,
		BDTPrice:            p.BDTPrice,
		FXRateApplied:       p.FXRateApplied,
		Status:              domain.ProductStatus(p.Status),
		AuditFields:         ToDomainAuditFields(p.AuditFields),
	}
}
