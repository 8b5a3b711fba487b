package models

import "github.com/shopspring/decimal"

// Product is the persisted form of a catalog row.
type Product struct {
	ProductID           string          `db:"product_id"`
	Name                string          `db:"name"`
	VendorID            string          `db:"vendor_id"`
	Category            string          `db:"category"`
	BasePrice           decimal.Decimal `db:"base_price"`
	BaseCurrencyCode    string          `db:"base_currency_code"`
	ProfitMarginPercent decimal.Decimal `db:"profit_margin_percent"`
	BDTPrice            decimal.Decimal `db:"bdt_price"`
	FXRateApplied       decimal.Decimal `db:"fx_rate_applied"`
	Status              string          `db:"status"`
	AuditFields
}
