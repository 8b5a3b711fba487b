package dto

import "github.com/subsadmin/subsadmin_backend/internal/core/domain"

// CreateCurrencyRequest defines the structure for registering a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse defines the API representation of a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse converts a domain.Currency to its API representation.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// ToCurrencyListResponse converts a list of currencies.
func ToCurrencyListResponse(currencies []domain.Currency) []CurrencyResponse {
	items := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		items[i] = ToCurrencyResponse(&currencies[i])
	}
	return items
}
