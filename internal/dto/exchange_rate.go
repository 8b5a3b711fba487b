package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subsadmin/subsadmin_backend/internal/core/domain"
)

// UpsertExchangeRateRequest defines the structure for setting a currency's
// rate against BDT. Version must echo the version the caller read when
// updating an existing rate; it is ignored on first insert.
type UpsertExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Rate         decimal.Decimal `json:"rate" binding:"required,gt=0"`
	Version      int64           `json:"version" binding:"gte=0"`
}

// ConvertRequest defines the structure for a currency conversion.
type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required,gt=0"`
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,uppercase"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,uppercase"`
}

// ConvertResponse carries a conversion result. Converted keeps six decimal
// places so chained conversions do not accumulate rounding drift.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Converted    decimal.Decimal `json:"converted"`
}

// ExchangeRateResponse defines the API representation of a current rate.
type ExchangeRateResponse struct {
	CurrencyCode string           `json:"currencyCode"`
	Rate         decimal.Decimal  `json:"rate"`
	Version      int64            `json:"version"`
	LastUpdated  time.Time        `json:"lastUpdated"`
	Change       decimal.Decimal  `json:"change"`
	Trend        domain.RateTrend `json:"trend"`
}

// ExchangeRateHistoryResponse defines the API representation of one
// superseded rate value.
type ExchangeRateHistoryResponse struct {
	HistoryID     string          `json:"historyID"`
	CurrencyCode  string          `json:"currencyCode"`
	PreviousRate  decimal.Decimal `json:"previousRate"`
	Rate          decimal.Decimal `json:"rate"`
	Change        decimal.Decimal `json:"change"`
	PercentChange decimal.Decimal `json:"percentChange"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

// ExchangeRateHistoryListResponse is a paginated rate history.
type ExchangeRateHistoryListResponse struct {
	Items []ExchangeRateHistoryResponse `json:"items"`
	Pagination
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its API representation.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: r.CurrencyCode,
		Rate:         r.Rate,
		Version:      r.Version,
		LastUpdated:  r.LastUpdated,
		Change:       r.Change,
		Trend:        r.Trend,
	}
}

// ToExchangeRateListResponse converts the current rates of all currencies.
func ToExchangeRateListResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	items := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		items[i] = ToExchangeRateResponse(&rates[i])
	}
	return items
}

// ToExchangeRateHistoryResponse converts a domain history row.
func ToExchangeRateHistoryResponse(h *domain.ExchangeRateHistory) ExchangeRateHistoryResponse {
	return ExchangeRateHistoryResponse{
		HistoryID:     h.HistoryID,
		CurrencyCode:  h.CurrencyCode,
		PreviousRate:  h.PreviousRate,
		Rate:          h.Rate,
		Change:        h.Change,
		PercentChange: h.PercentChange,
		RecordedAt:    h.RecordedAt,
	}
}

// ToExchangeRateHistoryListResponse converts a page of history rows.
func ToExchangeRateHistoryListResponse(rows []domain.ExchangeRateHistory, page, pageSize, total int) ExchangeRateHistoryListResponse {
	items := make([]ExchangeRateHistoryResponse, len(rows))
	for i := range rows {
		items[i] = ToExchangeRateHistoryResponse(&rows[i])
	}
	return ExchangeRateHistoryListResponse{Items: items, Pagination: Pagination{Page: page, PageSize: pageSize, Total: total}}
}
