package domain

import "github.com/shopspring/decimal"

// ProductStatus indicates whether a product can be ordered.
type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVE"
	ProductInactive ProductStatus = "INACTIVE"
)

// Product is a catalog entry. BDTPrice is derived at write time from the base
// price, the profit margin and the base-currency rate; FXRateApplied keeps the
// rate value that was used so later rate changes never rewrite old prices.
type Product struct {
	ProductID           string          `json:"productID"`
	Name                string          `json:"name"`
	VendorID            string          `json:"vendorID"`
	Category            string          `json:"category"`
	BasePrice           decimal.Decimal `json:"basePrice"`
	BaseCurrencyCode    string          `json:"baseCurrencyCode"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	BDTPrice            decimal.Decimal `json:"bdtPrice"`
	FXRateApplied       decimal.Decimal `json:"fxRateApplied"`
	Status              ProductStatus   `json:"status"`
	AuditFields
}

// FinalBDTPrice computes base_price * (1 + margin/100) * rate, rounded to two
// decimal places (half-up).
func FinalBDTPrice(basePrice, marginPercent, rateToBDT decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	return basePrice.Mul(one.Add(marginPercent.Div(hundred))).Mul(rateToBDT).Round(2)
}
